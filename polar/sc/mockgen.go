//go:build gomock || generate

package sc

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package sc -destination mock_observer_test.go github.com/Observe-l/polarsc/polar/sc Observer"
