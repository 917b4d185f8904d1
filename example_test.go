package sievego_test

import (
	"fmt"

	"github.com/hupe1980/sievego"
)

func ExampleNewBasic() {
	s := sievego.NewBasic(30)

	fmt.Println(s.Primes())
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

func ExampleNewBitPacked() {
	s := sievego.NewBitPacked(1000)
	s.Generate()

	fmt.Println(s.PrimeCount())
	fmt.Println(s.MemoryUsage()) // ceil(1001/64) words of 8 bytes
	// Output:
	// 168
	// 128
}

func ExampleNewParallelWheel() {
	s := sievego.NewParallelWheel(100, 4)

	ok, _ := s.IsPrime(97)
	fmt.Println(ok)
	fmt.Println(s.PrimeCount())
	// Output:
	// true
	// 25
}

func ExampleSieve_IsPrime_outOfRange() {
	s := sievego.NewBasic(100)

	_, err := s.IsPrime(101)
	fmt.Println(err)
	// Output: number 101 exceeds sieve limit 100
}

func ExampleSieve_PrintPrimes() {
	s := sievego.NewWheel(30)
	s.Generate()

	_ = s.PrintPrimes(5)
	// Output:
	// 2 3 5 7 11
	// 13 17 19 23 29
}
