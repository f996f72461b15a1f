package main

// cache.go read-through cache for the public endpoints

import (
	"time"

	"github.com/patrickmn/go-cache"
)

func newCache() *cache.Cache {
	return cache.New(5*time.Minute, 10*time.Minute)
}

func (s *server) cached(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if data, found := s.cache.Get(key); found {
		return data, nil
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

// flushCache drops all cached reads. Called after every admin write so the
// public endpoints never serve stale rows.
func (s *server) flushCache() {
	s.cache.Flush()
}
