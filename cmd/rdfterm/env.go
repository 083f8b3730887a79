package main

import (
	"github.com/aleksaelezovic/rdfterm/internal/catalog"
	"github.com/aleksaelezovic/rdfterm/internal/collate"
	"github.com/aleksaelezovic/rdfterm/internal/index"
	"github.com/aleksaelezovic/rdfterm/internal/storage"
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// undefArg stands for an unbound argument of eval.
const undefArg = "UNDEF"

// env is the state shared by all subcommands: the storage in --dir and the
// type catalog kept in it.
type env struct {
	conf    *viper.Viper
	storage *storage.BadgerStorage
	catalog *catalog.Catalog
	index   *index.TermIndex
}

func openEnv(conf *viper.Viper) (*env, error) {
	locale := conf.GetString("locale")
	collate.SetDefault(locale)

	opts := storage.Options{
		Dir:        conf.GetString("dir"),
		InMemory:   conf.GetBool("in_memory"),
		SyncWrites: conf.GetBool("sync_writes"),
	}
	if opts.InMemory {
		opts.Dir = ""
	}
	s, err := storage.Open(opts)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Open(s)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	glog.V(1).Infof("Opened %q with locale %q", opts.Dir, locale)
	return &env{conf: conf, storage: s, catalog: cat}, nil
}

// termIndex opens the term index on first use.
func (e *env) termIndex() (*index.TermIndex, error) {
	if e.index != nil {
		return e.index, nil
	}
	idx, err := index.NewTermIndex(e.storage, index.Options{
		Locale:     e.conf.GetString("locale"),
		CacheBytes: e.conf.GetInt64("cache_mb") << 20,
	})
	if err != nil {
		return nil, err
	}
	e.index = idx
	return idx, nil
}

func (e *env) ordering() rdf.Ordering {
	return rdf.NewOrdering(collate.ForLocale(e.conf.GetString("locale")))
}

func (e *env) Close() {
	if e.index != nil {
		e.index.Close()
	}
	if err := e.storage.Close(); err != nil {
		glog.Errorf("Error closing storage: %v", err)
	}
}

// terms parses every argument with the catalog. With allowUndef set,
// undefArg yields a nil term.
func (e *env) terms(args []string, allowUndef bool) ([]*rdf.Term, error) {
	terms := make([]*rdf.Term, len(args))
	for i, arg := range args {
		if allowUndef && arg == undefArg {
			continue
		}
		t, err := e.catalog.ParseTerm(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		terms[i] = t
	}
	return terms, nil
}

// withEnv runs fn with an env opened from conf and closes it afterwards.
func withEnv(conf *viper.Viper, fn func(e *env) error) error {
	e, err := openEnv(conf)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(e)
}
