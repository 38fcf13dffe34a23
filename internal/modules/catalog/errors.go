package catalog

import "errors"

var ErrServiceRequired = errors.New("service is required")
