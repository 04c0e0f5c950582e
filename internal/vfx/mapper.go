/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vfx

// OutputCategory is the external breakdown taxonomy consumed by downstream
// analysis and exporters.
type OutputCategory string

const (
	// Compositing and 2D
	CatComp         OutputCategory = "comp"
	CatRoto         OutputCategory = "roto"
	CatPaintCleanup OutputCategory = "paint_cleanup"
	CatWireRemoval  OutputCategory = "wire_removal"

	// 3D / CG
	CatCGCreature      OutputCategory = "cg_creature"
	CatCGVehicle       OutputCategory = "cg_vehicle"
	CatCGProp          OutputCategory = "cg_prop"
	CatCGEnvironment   OutputCategory = "cg_environment"
	CatDigiDouble      OutputCategory = "digi_double"
	CatFaceReplacement OutputCategory = "face_replacement"

	// Environment
	CatSetExtension   OutputCategory = "set_extension"
	CatMattePainting  OutputCategory = "matte_painting"
	CatSkyReplacement OutputCategory = "sky_replacement"

	// FX simulation
	CatFXWater       OutputCategory = "fx_water"
	CatFXFire        OutputCategory = "fx_fire"
	CatFXSmokeDust   OutputCategory = "fx_smoke_dust"
	CatFXDestruction OutputCategory = "fx_destruction"
	CatFXWeather     OutputCategory = "fx_weather"
	CatFXExplosion   OutputCategory = "fx_explosion"

	// Camera / tracking
	CatMatchmove        OutputCategory = "matchmove"
	CatCameraProjection OutputCategory = "camera_projection"

	// Specialty
	CatCrowdSim     OutputCategory = "crowd_sim"
	CatZeroG        OutputCategory = "zero_g"
	CatScreenInsert OutputCategory = "screen_insert"
	CatDayForNight  OutputCategory = "day_for_night"
	CatBeautyWork   OutputCategory = "beauty_work"
	CatOther        OutputCategory = "other"
)

// triggerToOutput maps each scanner category to one or more output
// categories. A category may fan out (fire also implies smoke/dust work).
var triggerToOutput = map[string][]OutputCategory{
	"water":              {CatFXWater},
	"fire_pyro":          {CatFXFire, CatFXSmokeDust},
	"crowds_extras":      {CatCrowdSim},
	"creatures_animals":  {CatCGCreature},
	"vehicles":           {CatCGVehicle},
	"destruction":        {CatFXDestruction},
	"weapons_combat":     {CatComp, CatFXExplosion},
	"aerial_height":      {CatZeroG, CatWireRemoval},
	"weather_atmosphere": {CatFXWeather},
	"supernatural_magic": {CatComp, CatCGEnvironment},
	"wire_removal_rigs":  {CatWireRemoval},
	"cleanup_paint":      {CatPaintCleanup},
	"screen_inserts":     {CatScreenInsert},
	"set_extensions":     {CatSetExtension},
	"reflections_glass":  {CatComp},
	"beauty_retouching":  {CatBeautyWork},
	"rig_removal":        {CatWireRemoval, CatPaintCleanup},
	"stabilization":      {CatMatchmove},
}

// MapCategories translates scanner category names into output categories.
// Unknown names are ignored. The result preserves first-seen order and
// contains no duplicates even when several inputs fan out to the same tag.
func MapCategories(names []string) []OutputCategory {
	seen := map[OutputCategory]struct{}{}
	var out []OutputCategory
	for _, name := range names {
		for _, oc := range triggerToOutput[name] {
			if _, ok := seen[oc]; ok {
				continue
			}
			seen[oc] = struct{}{}
			out = append(out, oc)
		}
	}
	return out
}
