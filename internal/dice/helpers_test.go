package dice_test

import (
	"fmt"
)

// scriptedRoller replays fixed results and records the sizes it was asked for
type scriptedRoller struct {
	values []int
	sizes  []int
	err    error
}

func (s *scriptedRoller) Roll(size int) (int, error) {
	s.sizes = append(s.sizes, size)
	if s.err != nil {
		return 0, s.err
	}
	if len(s.values) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted")
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v, nil
}

func (s *scriptedRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}
