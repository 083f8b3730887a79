// Package collate provides the locale-aware string comparison that term
// ordering delegates to. It plays the role strcoll plays for C code.
package collate

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const enBase = "en"

// A *collate.Collator keeps iteration state and must not be shared between
// goroutines, so each locale gets a pool of them.
var cache struct {
	sync.Mutex
	pools         map[string]*sync.Pool
	defaultLocale string
}

// defaultPool is the pool of the default locale, read without the cache
// lock on every comparison.
var defaultPool atomic.Pointer[sync.Pool]

func init() {
	cache.pools = make(map[string]*sync.Pool)
	cache.defaultLocale = enBase
	cache.pools[enBase] = newPool(language.English)
	defaultPool.Store(cache.pools[enBase])
}

func newPool(tag language.Tag) *sync.Pool {
	return &sync.Pool{
		New: func() interface{} { return collate.New(tag) },
	}
}

// SetDefault changes the locale used by Compare and Key. An unknown locale
// falls back to English.
func SetDefault(lang string) {
	p := pool(lang)
	cache.Lock()
	defer cache.Unlock()
	if p == cache.pools[enBase] {
		lang = enBase
	}
	cache.defaultLocale = lang
	defaultPool.Store(p)
}

// Default returns the locale used by Compare and Key.
func Default() string {
	cache.Lock()
	defer cache.Unlock()
	return cache.defaultLocale
}

// pool returns the collator pool for lang. If the confidence of the tag match
// is better than none that locale is used, otherwise English.
func pool(lang string) *sync.Pool {
	cache.Lock()
	defer cache.Unlock()

	if lang == "" {
		lang = cache.defaultLocale
	}
	if p, found := cache.pools[lang]; found {
		return p
	}

	// Parse returns its best guess for a tag, or language.Und when it gives up.
	if tag, err := language.Parse(lang); err != nil {
		glog.Errorf("While trying to parse lang %q. Error: %v", lang, err)
	} else if tag != language.Und {
		if _, conf := tag.Base(); conf > language.No {
			p := newPool(tag)
			cache.pools[lang] = p
			return p
		}
	}

	glog.Warningf("Unable to find lang %q. Reverting to English.", lang)
	p := cache.pools[enBase]
	cache.pools[lang] = p
	return p
}

// Locale compares byte strings under one fixed locale. The zero Locale
// follows the default locale, including later SetDefault calls.
type Locale struct {
	pool *sync.Pool
}

func (l Locale) collators() *sync.Pool {
	if l.pool == nil {
		return defaultPool.Load()
	}
	return l.pool
}

// ForLocale returns the comparer for lang; "" selects the default locale at
// the time of the call.
func ForLocale(lang string) Locale {
	return Locale{pool: pool(lang)}
}

// CompareBytes orders a and b by collation. Strings the collation considers
// equal are ordered by their bytes, so 0 is only returned for identical input.
func (l Locale) CompareBytes(a, b []byte) int {
	p := l.collators()
	c := p.Get().(*collate.Collator)
	r := c.Compare(a, b)
	p.Put(c)
	if r != 0 {
		return r
	}
	return bytes.Compare(a, b)
}

// Key appends a binary key for s to dst. Keys of two strings compare with
// bytes.Compare the way the strings collate.
func (l Locale) Key(dst, s []byte) []byte {
	p := l.collators()
	c := p.Get().(*collate.Collator)
	var buf collate.Buffer
	key := c.Key(&buf, s)
	p.Put(c)
	return append(dst, key...)
}

// Compare orders a and b under the default locale.
func Compare(a, b []byte) int {
	return Locale{}.CompareBytes(a, b)
}

// Key appends the default-locale collation key for s to dst.
func Key(dst, s []byte) []byte {
	return Locale{}.Key(dst, s)
}
