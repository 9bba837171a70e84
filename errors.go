package skiplist

import "errors"

// Expected domain errors, surfaced to the caller as distinct sentinel values
// rather than a wrapped or typed error taxonomy. Check with errors.Is.
var (
	// ErrStartKeyGreaterThanEndKey is returned by RemoveSliceByKey when
	// startKey sorts after stopKey.
	ErrStartKeyGreaterThanEndKey = errors.New("skiplist: start key is greater than end key")

	// ErrStartIndexGreaterThanEndIndex is returned by RemoveSliceByIndex
	// when, after normalizing negative indices, start sorts after stop.
	ErrStartIndexGreaterThanEndIndex = errors.New("skiplist: start index is greater than end index")

	// ErrMissingKey is not returned by any operation in this package; point
	// lookups report an absent key through their boolean result instead.
	ErrMissingKey = errors.New("skiplist: key not found")

	// ErrMissingStartKey is returned by RemoveSliceByKey when startKey is
	// absent from the map.
	ErrMissingStartKey = errors.New("skiplist: start key not found")

	// ErrMissingEndKey is returned by RemoveSliceByKey when stopKey is
	// absent from the map (and startKey != stopKey).
	ErrMissingEndKey = errors.New("skiplist: end key not found")

	// ErrInvalidIndex is returned when an index argument is out of the
	// admissible range for the operation, including the empty-range case
	// of RemoveSliceByIndex(start, start).
	ErrInvalidIndex = errors.New("skiplist: invalid index")

	// ErrInvalidStopIndex is returned when a slice's stop index falls
	// outside [-size, size].
	ErrInvalidStopIndex = errors.New("skiplist: invalid stop index")

	// ErrStepIsZero is returned when a slice step of 0 is supplied.
	ErrStepIsZero = errors.New("skiplist: step index is zero")

	// ErrAllocFailed is propagated from the node cache when the backing
	// arena cannot grow to satisfy an allocation.
	ErrAllocFailed = errors.New("skiplist: node cache allocation failed")
)
