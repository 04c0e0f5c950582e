/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vfx

import "testing"

func TestMapCategoriesFanOut(t *testing.T) {
	got := MapCategories([]string{"fire_pyro"})
	if len(got) != 2 || got[0] != CatFXFire || got[1] != CatFXSmokeDust {
		t.Fatalf("fire_pyro fan-out wrong: %v", got)
	}
}

func TestMapCategoriesDedupPreservesOrder(t *testing.T) {
	// weapons_combat and reflections_glass both map to comp; it must appear
	// once, at its first-seen position.
	got := MapCategories([]string{"weapons_combat", "reflections_glass", "water"})
	want := []OutputCategory{CatComp, CatFXExplosion, CatFXWater}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMapCategoriesUnknownIgnored(t *testing.T) {
	got := MapCategories([]string{"not_a_category", "water", "also_unknown"})
	if len(got) != 1 || got[0] != CatFXWater {
		t.Fatalf("unknown categories not ignored: %v", got)
	}
}

func TestMapCategoriesEmpty(t *testing.T) {
	if got := MapCategories(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMapCategoriesEveryScannerCategoryMapped(t *testing.T) {
	for _, cat := range DefaultTaxonomy {
		if len(MapCategories([]string{cat.Name})) == 0 {
			t.Fatalf("scanner category %q has no output mapping", cat.Name)
		}
	}
}
