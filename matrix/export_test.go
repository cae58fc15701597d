// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers and panic messages to matrix_test
// without widening the production API.

var (
	ExportedEncodeKey     = encodeKey
	ExportedDecodeKey     = decodeKey
	ExportedGatherOptions = gatherOptions
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCapacityInvalid_TestOnly = panicCapacityInvalid
	PanicDimsInvalid_TestOnly     = panicDimsInvalid
)

// Capacity_TestOnly reports the resolved capacity of an Options snapshot.
func (o Options) Capacity_TestOnly() int { return o.capacity }

// StoreOf_TestOnly returns the store owned by m.
func StoreOf_TestOnly[T comparable](m *Matrix[T]) *Store[T] { return m.store }
