package supervisor

// Overseer owns a ResourcePool and a FactorySet[H] observing it, and is
// the actor type registered with internal/baselib/actor's Executor via
// the message types in messages.go. Its synchronous methods are also
// usable directly by anything holding an *Overseer, such as tests or a
// host binary wiring up initial resources before the actor starts
// accepting mail.
type Overseer[H Handle] struct {
	pool      *ResourcePool
	factories *FactorySet[H]
}

// NewOverseer returns an Overseer with an empty pool and factory set.
func NewOverseer[H Handle]() *Overseer[H] {
	return &Overseer[H]{
		pool:      NewResourcePool(),
		factories: NewFactorySet[H](),
	}
}

// Pool exposes the underlying ResourcePool, mostly for tests and for
// Factory.Build implementations that were constructed outside the
// Overseer and need to inspect it ahead of registration.
func (o *Overseer[H]) Pool() *ResourcePool {
	return o.pool
}

// InsertFactoryManual registers factory without attempting to build its
// handle immediately; the factory only reacts to subsequent pool
// mutations.
func (o *Overseer[H]) InsertFactoryManual(factory Factory[H]) {
	o.factories.Insert(factory, false)
}

// InsertFactoryAutobuild registers factory and has it attempt to build
// its handle the next time any resource is inserted into the pool.
func (o *Overseer[H]) InsertFactoryAutobuild(factory Factory[H]) {
	o.factories.Insert(factory, true)
}

// ContainsResource reports whether a value of type R is currently in the
// pool.
func ContainsResource[R any, H Handle](o *Overseer[H]) bool {
	return Contains[R](o.pool)
}

// InsertResourceMethod stores value under its concrete type,
// unconditionally overwriting and returning whatever was previously
// stored, then notifies every registered factory of the insertion.
//
// This is the synchronous counterpart to the InsertResource message,
// and deliberately does not share its name: the message is a no-op on
// a duplicate (see messages.go), while this method always overwrites.
// The asymmetry is intentional, not an oversight.
func InsertResourceMethod[R any, H Handle](o *Overseer[H], value R) (R, bool) {
	id := typeOf[R]()
	previous, had := Insert(o.pool, value)
	log.Debugf("Inserting resource %s (replacing existing: %v)", id, had)
	o.factories.OnAdd(o.pool, id)
	return previous, had
}

// UpdateResourceMethod replaces the value stored for type R only if one
// is already present, notifying every registered factory of the update.
// If no value of type R is present, it is a no-op and the second return
// value is false.
func UpdateResourceMethod[R any, H Handle](o *Overseer[H], value R) (R, bool) {
	var zero R
	if !Contains[R](o.pool) {
		return zero, false
	}

	previous, _ := Insert(o.pool, value)
	o.factories.OnUpdate(o.pool, typeOf[R]())
	return previous, true
}

// RemoveResourceMethod deletes the value stored for type R, if any,
// notifying every registered factory of the removal before the value
// leaves the pool — matching the ordering in which the original
// implementation's on_remove callback still observes the resource as
// present.
func RemoveResourceMethod[R any, H Handle](o *Overseer[H]) (R, bool) {
	var zero R
	if !Contains[R](o.pool) {
		return zero, false
	}

	id := typeOf[R]()
	o.factories.OnRemove(o.pool, id)

	return Remove[R](o.pool)
}
