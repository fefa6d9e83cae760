package domain

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// ZeroKey clears a derived key once the operation that needed it has finished.
// Derived keys must never outlive the call stack that requested them.
func ZeroKey(k DerivedKey) {
	Zero(k)
}
