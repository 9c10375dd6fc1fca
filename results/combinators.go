package results

// Map applies f to the value of a success and leaves a failure untouched.
// f is never invoked on a failure.  f must not panic; a panicking mapper is
// out of contract (use Wrap around fallible code instead).
func Map[T any, U any](r Result[T], f func(T) U) Result[U] {
	if r.Err != nil {
		return Failure[U](r.Err)
	}
	return Success(f(r.Val))
}

// Then chains a Result-producing step onto a success and leaves a failure
// untouched.  It is the sequential composition primitive: each step only runs
// if everything before it succeeded.
func Then[T any, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.Err != nil {
		return Failure[U](r.Err)
	}
	return f(r.Val)
}

// Combine collapses a slice of Results into a single Result carrying every
// value in input order.  The first failure encountered in iteration order is
// returned as-is and the remaining elements are not examined.
func Combine[T any](rs []Result[T]) Result[[]T] {
	vals := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.Err != nil {
			return Failure[[]T](r.Err)
		}
		vals = append(vals, r.Val)
	}
	return Success(vals)
}

// Partition walks every element of rs and buckets values and errors
// separately, preserving relative order within each bucket.  Unlike Combine
// it never short-circuits.
func Partition[T any](rs []Result[T]) (vals []T, errs []error) {
	for _, r := range rs {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		vals = append(vals, r.Val)
	}
	return vals, errs
}

// Successes returns the values of every successful Result in rs, in order.
func Successes[T any](rs []Result[T]) []T {
	vals, _ := Partition(rs)
	return vals
}

// Failures returns the errors of every failed Result in rs, in order.
func Failures[T any](rs []Result[T]) []error {
	_, errs := Partition(rs)
	return errs
}
