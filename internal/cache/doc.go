// Package cache provides the small thread-safe LRU shared by the blur
// kernel table and the font loader.
//
//	c := cache.New[string, *Face](8)
//	face := c.GetOrCreate(path, func() *Face { return load(path) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
