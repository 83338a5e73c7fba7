// Package cache provides a small generic memoisation table with a soft
// entry limit, used to keep derived resources (font faces at a given size)
// alive across frames without unbounded growth.
package cache
