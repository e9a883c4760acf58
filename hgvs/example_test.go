// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hgvs_test

import (
	"fmt"
	"log"

	"znkr.io/algebra"
	"znkr.io/algebra/hgvs"
)

// An inserted copy of a tandem repeat is rendered as a repeat instead of a deletion/insertion.
func ExampleFormat() {
	reference := "CATCAT"
	variants, err := algebra.Extract(reference, "CATCATCAT")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(variants)
	fmt.Println(algebra.HGVS(variants, reference))
	fmt.Println(hgvs.Format(variants, reference))
	// Output:
	// [0:6/CATCATCAT]
	// 1_6delinsCATCATCAT
	// 1_6CAT[3]
}

func ExampleParse() {
	variants, err := hgvs.Parse("NG_008376.4:g.[3_4insT;3del]")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(variants)
	// Output:
	// [2:3/ 3:3/T]
}

func ExampleParseWithReference() {
	variants, err := hgvs.ParseWithReference("3GA[3]", "TTGAGAGAGATT")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(variants)
	// Output:
	// [2:10/GAGAGA]
}
