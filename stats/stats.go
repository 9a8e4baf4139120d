package stats

import (
	"fmt"
	"math"
)

type Summary struct {
	N    int
	Min  float64
	Max  float64
	Mean float64
}

func Summarize(list []float64) Summary {
	if len(list) == 0 {
		return Summary{}
	}
	s := Summary{N: len(list), Min: list[0], Max: list[0]}
	for _, item := range list[1:] {
		s.Min = math.Min(s.Min, item)
		s.Max = math.Max(s.Max, item)
	}
	s.Mean = Sum(list) / float64(len(list))
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("n %d, min %v, mean %v, max %v", s.N, Round(s.Min, 2), Round(s.Mean, 2), Round(s.Max, 2))
}

func Sum(list []float64) float64 {
	var sum float64
	for _, item := range list {
		sum += item
	}
	return sum
}

func Round(val float64, places int) (newVal float64) {
	var round float64
	roundOn := .5
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	_div := math.Copysign(div, val)
	_roundOn := math.Copysign(roundOn, val)
	if _div >= _roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	return round / pow
}
