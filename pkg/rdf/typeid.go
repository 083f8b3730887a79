package rdf

import "strconv"

// TypeID classifies a term. The value range it falls into decides whether the
// term is a resource, a simple/plain literal, a numeric, boolean or date/time
// literal, or a literal of a datatype this package knows nothing about.
//
//	0x0000          resources (IRIs and blank nodes)
//	0x0001          simple literals
//	0x0002          literals of type xsd:string
//	0x0003-0x0fff   plain literals, low 12 bits identify the language tag
//	0x1000-0x1fff   numeric literals, low 12 bits identify the datatype
//	0x2000          xsd:boolean
//	0x3000-0x3fff   date/time literals (dateTime, date, time)
//	>= 0x4000       unknown datatypes, compared as text
//
// The mapping from ids to datatype URIs and language tags is kept by the host.
type TypeID uint32

const (
	TypeIRI           TypeID = 0x00000000
	TypeSimpleLiteral TypeID = 0x00000001
	TypeString        TypeID = 0x00000002

	TypeNumericBase TypeID = 0x00001000
	TypeBoolean     TypeID = 0x00002000

	TypeDateTime TypeID = 0x00003000
	TypeDate     TypeID = 0x00003100
	TypeTime     TypeID = 0x00003200

	TypeUnknownBase TypeID = 0x00004000
)

const (
	// CompatibleMask selects the bits two ids must share to be comparable.
	CompatibleMask uint32 = 0xFFFFFF00

	// StorageMask selects the bits that decide the storage class.
	StorageMask uint32 = 0xFFFFF000

	// LanguageMax is the highest id that still denotes a plain literal.
	LanguageMax TypeID = 0x00000FFF
)

// StorageClass is the physical representation used for a type id.
type StorageClass byte

const (
	StorageText StorageClass = iota
	StorageNumeric
	StorageDateTime
)

func (c StorageClass) String() string {
	switch c {
	case StorageText:
		return "text"
	case StorageNumeric:
		return "numeric"
	case StorageDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether values of this type carry a float64 payload.
func IsNumeric(id TypeID) bool {
	return uint32(id)&StorageMask == uint32(TypeNumericBase)
}

// IsDateTime reports whether values of this type carry an epoch payload.
func IsDateTime(id TypeID) bool {
	return uint32(id)&StorageMask == uint32(TypeDateTime)
}

// IsText reports whether values of this type are stored as text only.
// Resources and booleans are text, too.
func IsText(id TypeID) bool {
	return !IsNumeric(id) && !IsDateTime(id)
}

// Compatible reports whether two type ids may be compared or combined without
// a type error. Ids are compatible iff they agree on all but the low 8 bits.
func Compatible(a, b TypeID) bool {
	return uint32(a)&CompatibleMask == uint32(b)&CompatibleMask
}

// StorageClassOf returns the storage class of a type id.
func StorageClassOf(id TypeID) StorageClass {
	switch {
	case IsNumeric(id):
		return StorageNumeric
	case IsDateTime(id):
		return StorageDateTime
	default:
		return StorageText
	}
}

// Group returns the compatibility group of the id, i.e. the id with its low
// 8 bits cleared.
func (id TypeID) Group() uint32 {
	return uint32(id) & CompatibleMask
}

// IsUnknown reports whether the id denotes a datatype outside the known ranges.
func (id TypeID) IsUnknown() bool {
	return id >= TypeUnknownBase
}

// String renders the id as lowercase hex without prefix, as used by the
// textual literal syntax.
func (id TypeID) String() string {
	return strconv.FormatUint(uint64(id), 16)
}
