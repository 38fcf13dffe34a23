package seed

import "fixitnow/internal/domain"

func subs(pairs ...any) []domain.CatalogSubservice {
	out := make([]domain.CatalogSubservice, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.CatalogSubservice{Name: pairs[i].(string), BasePrice: float64(pairs[i+1].(int))})
	}
	return out
}

// Categories is the built-in service catalog.
var Categories = []domain.Category{
	{Name: "Plumber", Subservices: subs(
		"Tap Installation", 200, "Leakage Repair", 150, "Pipe Fitting", 250, "Bathroom Fitting", 500,
		"Shower Installation", 350, "Toilet Repair", 300, "Sink Installation", 400, "Drain Unclogging", 180,
		"Water Tank Cleaning", 600, "Geyser Fitting", 550, "Bathroom Renovation", 1200,
	)},
	{Name: "Electrician", Subservices: subs(
		"Fan Repair", 250, "Light Fitting", 300, "Wiring", 700, "Switch Replacement", 150,
		"Inverter Installation", 800, "Power Backup Setup", 1200, "Tube Light Repair", 200, "Choke Repair", 180,
		"Circuit Breaker Fix", 400, "AC Point Installation", 350, "Meter Installation", 500,
	)},
	{Name: "Carpenter", Subservices: subs(
		"Sofa Making", 500, "Table Assembly", 300, "Door Repair", 400, "Cupboard Installation", 800,
		"Bed Repair", 450, "Modular Kitchen Setup", 1500, "Bookshelf Making", 600, "Window Frame Repair", 350,
		"Wooden Partition", 1000, "Chair Repair", 200, "TV Unit Setup", 700,
	)},
	{Name: "Painter", Subservices: subs(
		"Wall Painting", 600, "Oil Painting", 800, "Ceiling Painting", 500, "Texture Painting", 1000,
		"Metal Painting", 750, "Wood Polish", 650, "Waterproof Coating", 900, "Exterior Painting", 1500,
		"Interior Painting", 1200, "Furniture Painting", 450, "Primer Coating", 400,
	)},
	{Name: "Appliance Repair", Subservices: subs(
		"TV Repair", 400, "Fridge Repair", 500, "Microwave Repair", 350, "Washing Machine Repair", 600,
		"Mixer Grinder Repair", 250, "Water Purifier Repair", 450, "Oven Repair", 500, "Iron Repair", 200,
		"Heater Repair", 300, "Ceiling Fan Repair", 250, "Air Cooler Repair", 350, "Geyser Repair", 400,
	)},
	{Name: "Mechanic", Subservices: subs(
		"Bike Service", 300, "Car Service", 800, "Battery Replacement", 1000, "Brake Check", 400,
		"Engine Tune-Up", 1200, "Oil Change", 500, "Tyre Replacement", 700, "Clutch Repair", 900,
		"AC Gas Refill", 750,
	)},
	{Name: "Barber at Home", Subservices: subs(
		"Hair Cut", 150, "Beard Trim", 100, "Head Massage", 200, "Hair Coloring", 400, "Hair Styling", 300,
		"Shaving", 100, "Kids Haircut", 130, "Hot Towel Shave", 160,
	)},
	{Name: "Computer Repair", Subservices: subs(
		"OS Installation", 250, "Hardware Issue Diagnosis", 400, "RAM Upgrade", 300, "Motherboard Repair", 700,
		"Laptop Screen Replacement", 1000, "Virus Removal", 200, "WiFi Issue Fix", 300, "SSD Upgrade", 350,
		"Data Recovery", 600,
	)},
	{Name: "Wedding Photographer", Subservices: subs(
		"Full Day Shoot", 8000, "Pre-wedding Shoot", 10000, "Candid Photography", 9000, "Drone Shoot", 15000,
		"Album Printing", 3000, "Short Wedding Film", 9500,
	)},
	{Name: "Pest Control", Subservices: subs(
		"Termite Control", 1000, "Cockroach Treatment", 700, "Rodent Control", 800, "Bed Bug Treatment", 900,
		"Mosquito Control", 600, "Ant Control", 500,
	)},
	{Name: "Home Cleaning", Subservices: subs(
		"Kitchen Deep Cleaning", 1000, "Bathroom Cleaning", 600, "Sofa Cleaning", 500, "Carpet Cleaning", 700,
		"Full Home Deep Cleaning", 2500,
	)},
	{Name: "Laundry Services", Subservices: subs(
		"Wash & Iron", 25, "Dry Cleaning", 100, "Curtain Cleaning", 200, "Shoe Cleaning", 150, "Blanket Cleaning", 250,
	)},
	{Name: "Interior Design", Subservices: subs(
		"Modular Kitchen Design", 15000, "Living Room Interior", 20000, "False Ceiling", 10000,
		"Bedroom Design", 18000, "2D/3D Layout Plan", 5000,
	)},
	{Name: "Car Wash", Subservices: subs(
		"Exterior Wash", 300, "Interior Cleaning", 400, "Foam Wash", 450, "Dashboard Polishing", 250,
		"AC Vent Cleaning", 400,
	)},
}
