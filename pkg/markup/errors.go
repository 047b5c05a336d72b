package markup

import "errors"

// ErrAttrNotFound is returned by MigrateAttr when a required source
// attribute is absent from the node.
var ErrAttrNotFound = errors.New("attribute not found")
