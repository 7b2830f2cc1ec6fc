package cast

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is a cast category.
type Kind int

const (
	KindNone       Kind = iota // none
	KindDate                   // date
	KindDateTime               // datetime
	KindCustomDate             // custom_date
	KindEnum                   // enum
	KindOther                  // other

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

// IsDate returns true for every kind that is coerced to time.Time.
func (k Kind) IsDate() bool {
	switch k {
	case KindDate, KindDateTime, KindCustomDate:
		return true
	default:
		return false
	}
}
