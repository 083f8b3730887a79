// Package index keeps ordered sets of terms on top of a key-value Storage.
package index

import (
	"encoding/binary"
	"math"

	"github.com/aleksaelezovic/rdfterm/internal/collate"
	"github.com/aleksaelezovic/rdfterm/pkg/encoding"
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/aleksaelezovic/rdfterm/pkg/store"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrLocaleMismatch is returned when an index is opened with a collation
// locale other than the one its sort keys were built with.
var ErrLocaleMismatch = errors.New("index was built with a different locale")

var (
	metaLocale = []byte("locale")
	metaCount  = []byte("count")
)

// Options configures a TermIndex.
type Options struct {
	// Locale selects the collation for text terms. Empty means the process
	// default locale.
	Locale string

	// CacheBytes bounds the decoded term cache. Zero disables the cache.
	CacheBytes int64
}

// TermIndex is a set of terms kept in Comparator order. Every term is
// stored under its sort key, with an identity entry that maps its term key
// to the sort key. TermIndex is safe for concurrent use.
type TermIndex struct {
	storage store.Storage
	encoder store.TermEncoder
	decoder store.TermDecoder
	order   store.Comparator
	locale  string
	cache   *ristretto.Cache[[]byte, *rdf.Term]
}

// NewTermIndex opens the term index kept in storage.
func NewTermIndex(storage store.Storage, opts Options) (*TermIndex, error) {
	locale := opts.Locale
	if locale == "" {
		locale = collate.Default()
	}
	idx := &TermIndex{
		storage: storage,
		encoder: encoding.NewTermEncoder(locale),
		decoder: encoding.NewTermDecoder(),
		order:   rdf.NewOrdering(collate.ForLocale(locale)),
		locale:  locale,
	}

	if opts.CacheBytes > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[[]byte, *rdf.Term]{
			NumCounters: max(opts.CacheBytes/10, 100),
			MaxCost:     opts.CacheBytes,
			BufferItems: 64,
			Metrics:     true,
			Cost: func(t *rdf.Term) int64 {
				return int64(t.Len()) + 48
			},
		})
		if err != nil {
			return nil, errors.Wrap(err, "creating term cache")
		}
		idx.cache = cache
	}

	if err := idx.checkLocale(); err != nil {
		idx.closeCache()
		return nil, err
	}
	return idx, nil
}

// checkLocale records the locale of a new index, or verifies it matches the
// one recorded.
func (idx *TermIndex) checkLocale() error {
	txn, err := idx.storage.Begin(true)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	stored, err := txn.Get(store.TableMeta, metaLocale)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if err := txn.Set(store.TableMeta, metaLocale, []byte(idx.locale)); err != nil {
			return err
		}
		return txn.Commit()
	case err != nil:
		return err
	case string(stored) != idx.locale:
		return errors.Wrapf(ErrLocaleMismatch, "built with %q, opened with %q", stored, idx.locale)
	}
	return nil
}

// Close releases the cache. The storage stays open.
func (idx *TermIndex) Close() {
	idx.closeCache()
}

func (idx *TermIndex) closeCache() {
	if idx.cache != nil {
		idx.cache.Close()
	}
}

// Locale returns the collation locale of the index.
func (idx *TermIndex) Locale() string {
	return idx.locale
}

// Comparator returns the order terms are kept in.
func (idx *TermIndex) Comparator() store.Comparator {
	return idx.order
}

// Insert adds terms to the index and returns how many were not present.
func (idx *TermIndex) Insert(terms ...*rdf.Term) (int, error) {
	txn, err := idx.storage.Begin(true)
	if err != nil {
		return 0, err
	}
	defer txn.Rollback()

	added := 0
	for _, t := range terms {
		termKey := idx.encoder.TermKey(t)
		if _, err := txn.Get(store.TableTerms, termKey[:]); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return 0, err
		}

		sortKey := idx.encoder.SortKey(t)
		if err := txn.Set(store.TableTerms, termKey[:], sortKey); err != nil {
			return 0, err
		}
		if err := txn.Set(store.TableOrder, sortKey, idx.encoder.EncodeTerm(t)); err != nil {
			return 0, err
		}
		added++
		glog.V(2).Infof("Inserting term %s", t)
	}

	if err := idx.addCount(txn, int64(added)); err != nil {
		return 0, err
	}
	if err := txn.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Delete removes terms from the index and returns how many were present.
func (idx *TermIndex) Delete(terms ...*rdf.Term) (int, error) {
	txn, err := idx.storage.Begin(true)
	if err != nil {
		return 0, err
	}
	defer txn.Rollback()

	removed := 0
	var keys [][encoding.TermKeySize]byte
	for _, t := range terms {
		termKey := idx.encoder.TermKey(t)
		sortKey, err := txn.Get(store.TableTerms, termKey[:])
		if errors.Is(err, store.ErrNotFound) {
			continue
		} else if err != nil {
			return 0, err
		}

		if err := txn.Delete(store.TableTerms, termKey[:]); err != nil {
			return 0, err
		}
		if err := txn.Delete(store.TableOrder, sortKey); err != nil {
			return 0, err
		}
		keys = append(keys, termKey)
		removed++
		glog.V(2).Infof("Deleting term %s", t)
	}

	if err := idx.addCount(txn, -int64(removed)); err != nil {
		return 0, err
	}
	if err := txn.Commit(); err != nil {
		return 0, err
	}
	if idx.cache != nil {
		for _, key := range keys {
			idx.cache.Del(key[:])
		}
	}
	return removed, nil
}

// Contains reports whether a term identical to t is in the index.
func (idx *TermIndex) Contains(t *rdf.Term) (bool, error) {
	_, err := idx.Lookup(idx.encoder.TermKey(t))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Lookup returns the term stored under a term key.
func (idx *TermIndex) Lookup(key [encoding.TermKeySize]byte) (*rdf.Term, error) {
	if idx.cache != nil {
		if t, ok := idx.cache.Get(key[:]); ok {
			return t, nil
		}
	}

	txn, err := idx.storage.Begin(false)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback()

	sortKey, err := txn.Get(store.TableTerms, key[:])
	if err != nil {
		return nil, err
	}
	value, err := txn.Get(store.TableOrder, sortKey)
	if err != nil {
		return nil, errors.Wrap(err, "term entry without order entry")
	}
	t, err := idx.decoder.DecodeTerm(value)
	if err != nil {
		return nil, err
	}

	if idx.cache != nil {
		idx.cache.Set(key[:], t, 0)
	}
	return t, nil
}

// Count returns the number of terms in the index.
func (idx *TermIndex) Count() (int64, error) {
	txn, err := idx.storage.Begin(false)
	if err != nil {
		return 0, err
	}
	defer txn.Rollback()
	return readCount(txn)
}

func (idx *TermIndex) addCount(txn store.Transaction, delta int64) error {
	if delta == 0 {
		return nil
	}
	n, err := readCount(txn)
	if err != nil {
		return err
	}
	return txn.Set(store.TableMeta, metaCount, binary.BigEndian.AppendUint64(nil, uint64(n+delta)))
}

func readCount(txn store.Transaction) (int64, error) {
	value, err := txn.Get(store.TableMeta, metaCount)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	if len(value) != 8 {
		return 0, errors.Errorf("corrupt term count of %d bytes", len(value))
	}
	return int64(binary.BigEndian.Uint64(value)), nil
}

// CacheMetrics returns the hit and miss counts of the term cache.
func (idx *TermIndex) CacheMetrics() (hits, misses uint64) {
	if idx.cache == nil || idx.cache.Metrics == nil {
		return 0, 0
	}
	return idx.cache.Metrics.Hits(), idx.cache.Metrics.Misses()
}

// isNaN reports whether t is a numeric NaN. NaN compares greater than every
// bound, so it is never inside a bounded range.
func isNaN(t *rdf.Term) bool {
	f, ok := t.Number()
	return ok && math.IsNaN(f)
}
