package supervisor

import "reflect"

// ResourcePool is a type-indexed store holding at most one value per
// concrete Go type. It is the Go rendering of the original crate's
// ResourcePool, whose key is a TypeId; reflect.Type is the direct Go
// analogue of TypeId for this purpose.
type ResourcePool struct {
	values map[reflect.Type]any
}

// NewResourcePool returns an empty pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{values: make(map[reflect.Type]any)}
}

// Contains reports whether a value of type R is present.
func Contains[R any](p *ResourcePool) bool {
	var zero R
	_, ok := p.values[reflect.TypeOf(zero)]
	return ok
}

// ContainsID reports whether a value is present for the given reflect.Type,
// the type-erased counterpart to Contains used by factory callbacks that
// only ever see a TypeId-equivalent, never the concrete type R.
func (p *ResourcePool) ContainsID(id reflect.Type) bool {
	_, ok := p.values[id]
	return ok
}

// Insert stores value under its concrete type, unconditionally overwriting
// and returning whatever was previously stored for that type, if anything.
// Values are boxed behind a *R internally (see GetMut) so storage is always
// by pointer, never by the interface-boxed value itself.
func Insert[R any](p *ResourcePool, value R) (R, bool) {
	var zero R
	key := reflect.TypeOf(zero)

	previous, had := p.values[key]

	boxed := new(R)
	*boxed = value
	p.values[key] = boxed

	if !had {
		return zero, false
	}

	return *previous.(*R), true
}

// Get returns a copy of the value stored for type R, if any. Because Go has
// no reference-vs-owned distinction at the call site the way the original
// crate's get (returning &T) and get_clone (returning a cloned T) do, Get
// and GetClone are equivalent here: both hand back an independent copy, and
// GetClone exists only so call sites can spell out "I want my own copy" the
// way the original does.
func Get[R any](p *ResourcePool) (R, bool) {
	var zero R
	v, ok := p.values[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}

	return *v.(*R), true
}

// GetClone returns a copy of the value stored for type R, if any. See Get.
func GetClone[R any](p *ResourcePool) (R, bool) {
	return Get[R](p)
}

// GetMut returns a pointer directly into the pool's storage for type R, if
// any, so a caller can mutate the stored resource in place without a
// separate Insert round-trip. This is the Go analogue of the original
// crate's get_mut, which hands back a &mut T borrow into the same slot.
func GetMut[R any](p *ResourcePool) (*R, bool) {
	var zero R
	v, ok := p.values[reflect.TypeOf(zero)]
	if !ok {
		return nil, false
	}

	return v.(*R), true
}

// Remove deletes and returns the value stored for type R, if any.
func Remove[R any](p *ResourcePool) (R, bool) {
	var zero R
	key := reflect.TypeOf(zero)

	v, ok := p.values[key]
	if !ok {
		return zero, false
	}

	delete(p.values, key)

	return *v.(*R), true
}

// typeOf is a small helper so call sites outside this file (overseer.go)
// can compute a reflect.Type key for R without reaching into map internals.
func typeOf[R any]() reflect.Type {
	var zero R
	return reflect.TypeOf(zero)
}
