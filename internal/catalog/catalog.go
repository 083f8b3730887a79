// Package catalog maps datatype URIs and language tags to type ids. Term
// values only carry the ids; the catalog is the host side that gives them
// meaning.
package catalog

import (
	"encoding/binary"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/aleksaelezovic/rdfterm/pkg/store"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// XSD is the XML Schema datatype namespace.
const XSD = "http://www.w3.org/2001/XMLSchema#"

// Ids of the built-in numeric datatypes. Arithmetic results take the lower
// of the operand ids, so wider types come first.
const (
	TypeDouble rdf.TypeID = rdf.TypeNumericBase + iota
	TypeFloat
	TypeDecimal
	TypeInteger
	TypeNonPositiveInteger
	TypeNegativeInteger
	TypeLong
	TypeInt
	TypeShort
	TypeByte
	TypeNonNegativeInteger
	TypeUnsignedLong
	TypeUnsignedInt
	TypeUnsignedShort
	TypeUnsignedByte
	TypePositiveInteger
)

var builtins = map[string]rdf.TypeID{
	"string":             rdf.TypeString,
	"double":             TypeDouble,
	"float":              TypeFloat,
	"decimal":            TypeDecimal,
	"integer":            TypeInteger,
	"nonPositiveInteger": TypeNonPositiveInteger,
	"negativeInteger":    TypeNegativeInteger,
	"long":               TypeLong,
	"int":                TypeInt,
	"short":              TypeShort,
	"byte":               TypeByte,
	"nonNegativeInteger": TypeNonNegativeInteger,
	"unsignedLong":       TypeUnsignedLong,
	"unsignedInt":        TypeUnsignedInt,
	"unsignedShort":      TypeUnsignedShort,
	"unsignedByte":       TypeUnsignedByte,
	"positiveInteger":    TypePositiveInteger,
	"boolean":            rdf.TypeBoolean,
	"dateTime":           rdf.TypeDateTime,
	"date":               rdf.TypeDate,
	"time":               rdf.TypeTime,
}

const (
	firstLanguage = rdf.TypeString + 1

	// Each unknown datatype gets a compatibility group of its own.
	unknownStep = rdf.TypeID(^rdf.CompatibleMask + 1)
)

// ErrFull is returned when no ids are left for a new language tag or
// datatype.
var ErrFull = errors.New("catalog: no free type ids")

const (
	kindDatatype = 'd'
	kindLanguage = 'l'
)

// Entry is one mapping of the catalog.
type Entry struct {
	ID rdf.TypeID
	// Language is set for plain literal ids, Datatype for all others.
	Language string
	Datatype string
}

// Catalog assigns type ids. New language tags and unknown datatypes get the
// next free id of their range; with a Storage the assignments persist.
type Catalog struct {
	mu           sync.RWMutex
	storage      store.Storage
	datatypes    map[string]rdf.TypeID
	languages    map[string]rdf.TypeID
	names        map[rdf.TypeID]string
	nextLanguage rdf.TypeID
	nextUnknown  rdf.TypeID
}

// New returns an in-memory catalog holding the built-in XSD datatypes.
func New() *Catalog {
	c := &Catalog{
		datatypes:    make(map[string]rdf.TypeID, len(builtins)),
		languages:    make(map[string]rdf.TypeID),
		names:        make(map[rdf.TypeID]string, len(builtins)),
		nextLanguage: firstLanguage,
		nextUnknown:  rdf.TypeUnknownBase,
	}
	for name, id := range builtins {
		c.datatypes[XSD+name] = id
		c.names[id] = XSD + name
	}
	return c
}

// Open returns a catalog that loads and stores its assignments in s.
func Open(s store.Storage) (*Catalog, error) {
	c := New()
	c.storage = s

	txn, err := s.Begin(false)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback()

	it, err := txn.Scan(store.TableCatalog, nil, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	for it.Next() {
		key := it.Key()
		value, err := it.Value()
		if err != nil {
			return nil, err
		}
		if len(key) < 1 || len(value) != 4 {
			return nil, errors.Errorf("corrupt catalog entry %q", key)
		}
		c.add(key[0], string(key[1:]), rdf.TypeID(binary.BigEndian.Uint32(value)))
	}
	glog.V(1).Infof("Loaded %d languages and %d datatypes", len(c.languages), len(c.datatypes)-len(builtins))
	return c, nil
}

// add records an assignment and advances the allocation counters past it.
func (c *Catalog) add(kind byte, name string, id rdf.TypeID) {
	c.names[id] = name
	switch kind {
	case kindLanguage:
		c.languages[name] = id
		if id >= c.nextLanguage {
			c.nextLanguage = id + 1
		}
	case kindDatatype:
		c.datatypes[name] = id
		if id >= c.nextUnknown {
			c.nextUnknown = rdf.TypeID(id.Group()) + unknownStep
		}
	}
}

func (c *Catalog) persist(kind byte, name string, id rdf.TypeID) error {
	if c.storage == nil {
		return nil
	}
	txn, err := c.storage.Begin(true)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	key := append([]byte{kind}, name...)
	if err := txn.Set(store.TableCatalog, key, binary.BigEndian.AppendUint32(nil, uint32(id))); err != nil {
		return err
	}
	return txn.Commit()
}

// DatatypeID returns the id of a datatype URI, assigning a new id in the
// unknown range if the URI has not been seen.
func (c *Catalog) DatatypeID(uri string) (rdf.TypeID, error) {
	c.mu.RLock()
	id, ok := c.datatypes[uri]
	c.mu.RUnlock()
	if ok {
		return id, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.datatypes[uri]; ok {
		return id, nil
	}
	id = c.nextUnknown
	if id < rdf.TypeUnknownBase {
		return 0, errors.Wrapf(ErrFull, "datatype %s", uri)
	}
	if err := c.persist(kindDatatype, uri, id); err != nil {
		return 0, err
	}
	c.add(kindDatatype, uri, id)
	glog.V(2).Infof("Assigned type id %s to datatype %s", id, uri)
	return id, nil
}

// LanguageID returns the id of a language tag, assigning the next plain
// literal id if the tag has not been seen. Tags are case-insensitive.
func (c *Catalog) LanguageID(tag string) (rdf.TypeID, error) {
	tag = strings.ToLower(tag)
	c.mu.RLock()
	id, ok := c.languages[tag]
	c.mu.RUnlock()
	if ok {
		return id, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.languages[tag]; ok {
		return id, nil
	}
	id = c.nextLanguage
	if id > rdf.LanguageMax {
		return 0, errors.Wrapf(ErrFull, "language %s", tag)
	}
	if err := c.persist(kindLanguage, tag, id); err != nil {
		return 0, err
	}
	c.add(kindLanguage, tag, id)
	glog.V(2).Infof("Assigned type id %s to language %s", id, tag)
	return id, nil
}

// TypeID returns the id for a literal with the given language tag or
// datatype URI. With neither it is the simple literal id.
func (c *Catalog) TypeID(lang, datatype string) (rdf.TypeID, error) {
	switch {
	case lang != "" && datatype != "":
		return 0, errors.New("catalog: a literal has either a language or a datatype")
	case lang != "":
		return c.LanguageID(lang)
	case datatype != "":
		return c.DatatypeID(datatype)
	default:
		return rdf.TypeSimpleLiteral, nil
	}
}

// Literal parses a literal given by its lexical form and either a language
// tag or a datatype URI.
func (c *Catalog) Literal(text, lang, datatype string) (*rdf.Term, error) {
	id, err := c.TypeID(lang, datatype)
	if err != nil {
		return nil, err
	}
	return rdf.ParseString(id, text)
}

// Datatype returns the datatype URI of the term's type.
func (c *Catalog) Datatype(t *rdf.Term) (string, bool) {
	id, ok := t.DatatypeID()
	if !ok {
		if t.TypeID() == rdf.TypeString {
			return XSD + "string", true
		}
		return "", false
	}
	return c.name(id)
}

// Language returns the language tag of a plain literal.
func (c *Catalog) Language(t *rdf.Term) (string, bool) {
	id, ok := t.LanguageID()
	if !ok {
		return "", false
	}
	return c.name(id)
}

func (c *Catalog) name(id rdf.TypeID) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[id]
	return name, ok
}

// Format renders a term in N-Triples style. Ids the catalog does not know
// are shown as raw hex type ids.
func (c *Catalog) Format(t *rdf.Term) string {
	switch {
	case t.IsBlankNode():
		return "_:" + strings.TrimPrefix(t.Text(), rdf.BlankNodePrefix)
	case t.IsURI():
		return "<" + t.Text() + ">"
	case t.TypeID() == rdf.TypeSimpleLiteral:
		return strconv.Quote(t.Text())
	}
	if lang, ok := c.Language(t); ok {
		return strconv.Quote(t.Text()) + "@" + lang
	}
	if dt, ok := c.Datatype(t); ok {
		return strconv.Quote(t.Text()) + "^^<" + dt + ">"
	}
	return strconv.Quote(t.Text()) + "^^" + t.TypeID().String()
}

// Entries returns all mappings ordered by id.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	entries := make([]Entry, 0, len(c.names))
	for id, name := range c.names {
		e := Entry{ID: id}
		if id >= firstLanguage && id <= rdf.LanguageMax {
			e.Language = name
		} else {
			e.Datatype = name
		}
		entries = append(entries, e)
	}
	c.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}
