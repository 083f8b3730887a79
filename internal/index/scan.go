package index

import (
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/aleksaelezovic/rdfterm/pkg/store"
	"github.com/golang/glog"
)

// TermIterator walks the terms of an index in Comparator order. It reads
// from a snapshot taken when the scan started.
type TermIterator struct {
	idx    *TermIndex
	txn    store.Transaction
	it     store.Iterator
	lo, hi *rdf.Term
	term   *rdf.Term
	err    error
	done   bool
}

// Scan returns an iterator over the terms t with lo <= t <= hi under the
// index's Comparator. A nil bound leaves that side of the range open. NaN
// compares greater than any bound, so bounded scans never return it.
//
// Sort keys only refine the Comparator, so the scan starts at the first
// compatibility group the range can reach and filters from there.
func (idx *TermIndex) Scan(lo, hi *rdf.Term) (*TermIterator, error) {
	var start, end []byte
	if lo != nil {
		start = idx.encoder.GroupPrefix(lo.TypeID())
	}
	if hi != nil {
		end = store.PrefixEnd(idx.encoder.GroupPrefix(hi.TypeID()))
	}
	glog.V(2).Infof("Scanning terms from %v to %v", lo, hi)
	return idx.scan(start, end, lo, hi)
}

// ScanGroup returns an iterator over the terms whose type id is compatible
// with id.
func (idx *TermIndex) ScanGroup(id rdf.TypeID) (*TermIterator, error) {
	prefix := idx.encoder.GroupPrefix(id)
	return idx.scan(prefix, store.PrefixEnd(prefix), nil, nil)
}

func (idx *TermIndex) scan(start, end []byte, lo, hi *rdf.Term) (*TermIterator, error) {
	txn, err := idx.storage.Begin(false)
	if err != nil {
		return nil, err
	}
	it, err := txn.Scan(store.TableOrder, start, end)
	if err != nil {
		_ = txn.Rollback()
		return nil, err
	}
	return &TermIterator{idx: idx, txn: txn, it: it, lo: lo, hi: hi}, nil
}

// Next advances to the next term in range.
func (i *TermIterator) Next() bool {
	if i.done {
		return false
	}
	bounded := i.lo != nil || i.hi != nil
	for i.it.Next() {
		value, err := i.it.Value()
		if err != nil {
			return i.fail(err)
		}
		t, err := i.idx.decoder.DecodeTerm(value)
		if err != nil {
			return i.fail(err)
		}

		if bounded {
			if isNaN(t) {
				continue
			}
			if i.lo != nil && i.idx.order.Compare(i.lo, t) > 0 {
				continue
			}
			// Everything after a term above hi is above hi as well.
			if i.hi != nil && i.idx.order.Compare(t, i.hi) > 0 {
				break
			}
		}
		i.term = t
		return true
	}
	i.done = true
	i.term = nil
	return false
}

func (i *TermIterator) fail(err error) bool {
	i.err = err
	i.done = true
	i.term = nil
	return false
}

// Term returns the current term.
func (i *TermIterator) Term() *rdf.Term {
	return i.term
}

// Err returns the error that stopped the iteration, if any.
func (i *TermIterator) Err() error {
	return i.err
}

// Close releases the snapshot.
func (i *TermIterator) Close() error {
	if err := i.it.Close(); err != nil {
		_ = i.txn.Rollback()
		return err
	}
	return i.txn.Rollback()
}

// Range collects the terms lo <= t <= hi.
func (idx *TermIndex) Range(lo, hi *rdf.Term) ([]*rdf.Term, error) {
	it, err := idx.Scan(lo, hi)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var terms []*rdf.Term
	for it.Next() {
		terms = append(terms, it.Term())
	}
	return terms, it.Err()
}
