package mocks

// Generated mocks are produced with MockGen from go.uber.org/mock. Run
// `go generate ./internal/mocks` after changing a port interface.

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_mock.go github.com/openshelf/openshelf/internal/ports DurableStorage,Navigator
