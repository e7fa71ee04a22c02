package pagination

import "errors"

var (
	ErrNegativeFrom    = errors.New("The from parameter can't be negative number")
	ErrNonPositiveSize = errors.New("The size parameter must be positive number")
)

const (
	DefaultFrom = 0
	DefaultSize = 10
)

// Params is the from/size pagination contract shared by every listing
// endpoint. The page index is from divided by size, so a listing walks pages
// of exactly size records.
type Params struct {
	From int
	Size int
}

// New applies defaults for absent values. Absence is signalled with a
// negative sentinel by the delivery layer; explicit values pass through
// untouched so invalid ones still fail Validate.
func New(from, size *int) Params {
	p := Params{From: DefaultFrom, Size: DefaultSize}
	if from != nil {
		p.From = *from
	}
	if size != nil {
		p.Size = *size
	}
	return p
}

// Validate rejects negative from and non-positive size.
func (p Params) Validate() error {
	if p.From < 0 {
		return ErrNegativeFrom
	}
	if p.Size <= 0 {
		return ErrNonPositiveSize
	}
	return nil
}

// Offset is the row offset of the page containing from.
func (p Params) Offset() int {
	return (p.From / p.Size) * p.Size
}

// Limit is the page size.
func (p Params) Limit() int {
	return p.Size
}
