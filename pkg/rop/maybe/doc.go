// Package maybe lifts plain functions over rop.Option. Absent values skip
// every step; nothing here signals absence any other way.
//
// Key operations:
// - Map: transform a present value (f must always produce a value)
// - Chain: compose steps that may themselves produce nothing, without nesting
// - Zip/Flatten/Transpose: reshape options
// - OkOr/OkOrElse: turn absence into a typed failure
// - Finally: consume both arms explicitly
// - FirstOf/Lookup: leaf producers over slices and maps
package maybe
