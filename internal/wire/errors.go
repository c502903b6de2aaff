package wire

import "errors"

var (
	ErrNoColon   = errors.New("wire: content line has no colon")
	ErrEmptyName = errors.New("wire: content line has no property name")
)
