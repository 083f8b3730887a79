package storage

import (
	"bytes"

	"github.com/aleksaelezovic/rdfterm/pkg/store"
	badger "github.com/dgraph-io/badger/v4"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Options configures a BadgerStorage.
type Options struct {
	// Dir is the database directory. It must be empty if InMemory is set.
	Dir string

	// InMemory keeps all data in memory; nothing is written to disk.
	InMemory bool

	// SyncWrites makes every commit wait for its write to reach disk.
	SyncWrites bool
}

// BadgerStorage implements Storage using BadgerDB
type BadgerStorage struct {
	db *badger.DB
}

// NewBadgerStorage creates a new BadgerDB-backed storage in path.
func NewBadgerStorage(path string) (*BadgerStorage, error) {
	return Open(Options{Dir: path})
}

// Open creates a BadgerDB-backed storage from opts.
func Open(opts Options) (*BadgerStorage, error) {
	bopts := badger.DefaultOptions(opts.Dir).
		WithInMemory(opts.InMemory).
		WithSyncWrites(opts.SyncWrites)
	bopts.Logger = nil // Disable default logger

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open badger db at %q", opts.Dir)
	}
	if opts.InMemory {
		glog.V(1).Infof("Opened in-memory badger storage")
	} else {
		glog.V(1).Infof("Opened badger storage at %s", opts.Dir)
	}

	return &BadgerStorage{db: db}, nil
}

// Begin starts a new transaction
func (s *BadgerStorage) Begin(writable bool) (store.Transaction, error) {
	txn := s.db.NewTransaction(writable)
	return &BadgerTransaction{
		txn:      txn,
		writable: writable,
	}, nil
}

// Close closes the storage
func (s *BadgerStorage) Close() error {
	return errors.Wrap(s.db.Close(), "closing badger db")
}

// Sync flushes writes to disk
func (s *BadgerStorage) Sync() error {
	return errors.Wrap(s.db.Sync(), "syncing badger db")
}

// Size returns the on-disk size of the LSM tree and the value log.
func (s *BadgerStorage) Size() (lsm, vlog int64) {
	return s.db.Size()
}

// BadgerTransaction implements Transaction using BadgerDB
type BadgerTransaction struct {
	txn      *badger.Txn
	writable bool
}

// Get retrieves a value by key
func (t *BadgerTransaction) Get(table store.Table, key []byte) ([]byte, error) {
	item, err := t.txn.Get(store.PrefixKey(table, key))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get from %s", table)
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.Wrapf(err, "reading value from %s", table)
	}
	return value, nil
}

// Set stores a key-value pair
func (t *BadgerTransaction) Set(table store.Table, key, value []byte) error {
	if !t.writable {
		return store.ErrTransactionRO
	}
	return errors.Wrapf(t.txn.Set(store.PrefixKey(table, key), value), "set in %s", table)
}

// Delete removes a key
func (t *BadgerTransaction) Delete(table store.Table, key []byte) error {
	if !t.writable {
		return store.ErrTransactionRO
	}
	return errors.Wrapf(t.txn.Delete(store.PrefixKey(table, key)), "delete from %s", table)
}

// Scan iterates over a key range [start, end) of one table
func (t *BadgerTransaction) Scan(table store.Table, start, end []byte) (store.Iterator, error) {
	tablePrefix := store.TablePrefix(table)

	opts := badger.DefaultIteratorOptions
	opts.Prefix = tablePrefix
	it := t.txn.NewIterator(opts)

	seekKey := tablePrefix
	if start != nil {
		seekKey = store.PrefixKey(table, start)
	}
	var endKey []byte
	if end != nil {
		endKey = store.PrefixKey(table, end)
	}

	return &BadgerIterator{
		it:      it,
		prefix:  tablePrefix,
		endKey:  endKey,
		seekKey: seekKey,
	}, nil
}

// Commit commits the transaction
func (t *BadgerTransaction) Commit() error {
	err := t.txn.Commit()
	if errors.Is(err, badger.ErrConflict) {
		return store.ErrConflict
	}
	return errors.Wrap(err, "commit")
}

// Rollback rolls back the transaction
func (t *BadgerTransaction) Rollback() error {
	t.txn.Discard()
	return nil
}

// BadgerIterator implements Iterator using BadgerDB
type BadgerIterator struct {
	it       *badger.Iterator
	prefix   []byte // Table prefix, stripped from keys
	endKey   []byte
	seekKey  []byte
	started  bool
	hasValue bool
}

// Next advances to the next item
func (i *BadgerIterator) Next() bool {
	if !i.started {
		i.it.Seek(i.seekKey)
		i.started = true
	} else {
		i.it.Next()
	}

	i.hasValue = i.it.Valid() &&
		(i.endKey == nil || bytes.Compare(i.it.Item().Key(), i.endKey) < 0)
	return i.hasValue
}

// Key returns the current key (without the table prefix)
func (i *BadgerIterator) Key() []byte {
	if !i.hasValue {
		return nil
	}
	key := i.it.Item().KeyCopy(nil)
	return key[len(i.prefix):]
}

// Value returns the current value
func (i *BadgerIterator) Value() ([]byte, error) {
	if !i.hasValue {
		return nil, store.ErrNotFound
	}
	value, err := i.it.Item().ValueCopy(nil)
	return value, errors.Wrap(err, "reading value")
}

// Close closes the iterator
func (i *BadgerIterator) Close() error {
	i.it.Close()
	return nil
}
