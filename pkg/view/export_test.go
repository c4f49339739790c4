package view

// ResetInstance drops the shared View so each test starts clean.
func ResetInstance() {
	mu.Lock()
	instance = nil
	mu.Unlock()
}
