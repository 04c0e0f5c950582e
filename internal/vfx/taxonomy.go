/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vfx

// TaxonomyVersion participates in parse-cache keys; bump it whenever the
// built-in table below changes in a way that affects scan results.
const TaxonomyVersion = "v1"

// DefaultTaxonomy is the built-in trigger table, compiled once at init.
// A slice, not a map: scan order must be stable across runs.
var DefaultTaxonomy = mustCompileSpecs(builtinSpecs)

var builtinSpecs = []categorySpec{
	{
		name:     "water",
		severity: SeverityHigh,
		keywords: []string{
			`\bocean\b`,
			`\bsea\b`,
			`\briver\b`,
			`\blake\b`,
			`\bpool\b`,
			`\bflood(?:ing|ed|s)?\b`,
			`\bunderwater\b`,
			`\bswim(?:s|ming)?\b`,
			`\bdive[sd]?\b`,
			`\bwave[sd]?\b`,
			`\btsunami\b`,
			`\bsplash(?:es|ing)?\b`,
			`\bsubmerg(?:ed|es|ing)?\b`,
			`\bdrown(?:s|ing|ed)?\b`,
		},
		exclusions: []string{
			`water\s*(?:bottle|glass|cup|cooler|proof|tight|color|mark)`,
		},
	},
	{
		name:     "fire_pyro",
		severity: SeverityHigh,
		keywords: []string{
			`\bflame[sd]?\b`,
			`\bburn(?:s|ing|ed)?\b`,
			`\bexplo(?:sion|de[sd]?|ding)\b`,
			`\bblast\b`,
			`\binferno\b`,
			`\bblaze[sd]?\b`,
			`\bignite[sd]?\b`,
			`\bsmoke\b`,
			`\bspark[sd]?\b`,
			`\bdetonate[sd]?\b`,
			`\bgunfire\b`,
			`\bmuzzle\s*flash\b`,
			`\bfireball\b`,
		},
		exclusions: []string{
			`fire[sd]\s+(?:from|him|her|them|the\s+employee|a\s+question|off\s+an?\s+email)`,
			`fire\s*(?:place|house|fighter|truck|man|men|woman|station|chief|escape|exit|drill|alarm|hydrant|department)`,
			`\bcamp\s*fire\b`,
		},
	},
	{
		name:     "crowds_extras",
		severity: SeverityMedium,
		keywords: []string{
			`\bcrowd[sd]?\b`,
			`\bmob\b`,
			`\bhorde\b`,
			`\bhundreds\b`,
			`\bthousands\b`,
			`\barm(?:y|ies)\b`,
			`\bsoldier[sd]?\b`,
			`\btroop[sd]?\b`,
			`\briot(?:s|ing|ers?)?\b`,
			`\bstampede\b`,
			`\bparade\b`,
			`\bstadium\b`,
		},
	},
	{
		name:     "vehicles",
		severity: SeverityMedium,
		keywords: []string{
			`\bcar\s+(?:chase|crash|wreck|flip|roll)\b`,
			`\bhelicopter\b`,
			`\bchopper\b`,
			`\baircraft\b`,
			`\bjet\b`,
			`\bspacecraft\b`,
			`\bspaceship\b`,
			`\bsubmarine\b`,
			`\btrain\b.*\b(?:crash|wreck|derail)\b`,
			`\bcrash(?:es|ing|ed)?\b`,
			`\bcollision\b`,
		},
		exclusions: []string{
			`tank\s*(?:top|of\s+gas)`,
		},
	},
	{
		name:     "creatures_animals",
		severity: SeverityHigh,
		keywords: []string{
			`\bmonster[sd]?\b`,
			`\bcreature[sd]?\b`,
			`\balien[sd]?\b`,
			`\bdragon[sd]?\b`,
			`\bdinosaur[sd]?\b`,
			`\bzombie[sd]?\b`,
			`\bwolf\b`,
			`\bwolves\b`,
			`\bmutant[sd]?\b`,
			`\bdemon[sd]?\b`,
			`\bghost[sd]?\b`,
			`\bwerewolf\b`,
			`\bvampire[sd]?\b`,
		},
		exclusions: []string{
			`bear\s+(?:with|in\s+mind)`,
			`horse\s*(?:play|power|shoe|around)`,
		},
	},
	{
		name:     "destruction",
		severity: SeverityHigh,
		keywords: []string{
			`\bcollaps(?:e[sd]?|ing)\b`,
			`\bdemolish\b`,
			`\bdestroy(?:s|ed|ing)?\b`,
			`\bdestruction\b`,
			`\bearthquake\b`,
			`\btornado\b`,
			`\bhurricane\b`,
			`\bavalanch\b`,
			`\bshatter(?:s|ed|ing)?\b`,
			`\bcrumbl(?:e[sd]?|ing)\b`,
		},
	},
	{
		name:     "weapons_combat",
		severity: SeverityMedium,
		keywords: []string{
			`\bgun[sd]?\b`,
			`\bpistol\b`,
			`\brifle\b`,
			`\bshotgun\b`,
			`\bshoot(?:s|ing|out)?\b`,
			`\bsword[sd]?\b`,
			`\blightsaber[sd]?\b`,
			`\bbattle\b`,
			`\bblaster[sd]?\b`,
		},
		exclusions: []string{
			`gun\s*(?:metal|powder\s+grey)`,
		},
	},
	{
		name:     "aerial_height",
		severity: SeverityHigh,
		keywords: []string{
			`\bfly(?:s|ing)?\b`,
			`\bflight\b`,
			`\bsoar(?:s|ing)?\b`,
			`\bhover(?:s|ing)?\b`,
			`\bparachute\b`,
			`\bskydiv(?:e|ing)\b`,
		},
		exclusions: []string{
			`flight\s+(?:of\s+stairs|attendant|delay)`,
		},
	},
	{
		name:     "weather_atmosphere",
		severity: SeverityMedium,
		keywords: []string{
			`\bstorm(?:s|ing|y)?\b`,
			`\blightning\b`,
			`\bthunder\b`,
			`\bsnow(?:s|ing|storm)?\b`,
			`\bblizzard\b`,
			`\bfog(?:gy)?\b`,
			`\bmist(?:y)?\b`,
		},
		exclusions: []string{
			`\bbrain\b`,
		},
	},
	{
		name:     "supernatural_magic",
		severity: SeverityHigh,
		keywords: []string{
			`\bmagic\b`,
			`\bspell[sd]?\b`,
			`\bteleport\b`,
			`\bvanish(?:es|ed|ing)?\b`,
			`\btransform(?:s|ing|ation)?\b`,
			`\blevitat(?:e[sd]?|ing|ion)\b`,
			`\bforce[\s-]?field\b`,
			`\bportal[sd]?\b`,
			`\bsupernatural\b`,
			`\b(?:the\s+)?force\b`,
		},
		exclusions: []string{
			`force[sd]?\s+(?:him|her|them|to|into|out)`,
			`(?:air|task|work|police|armed)\s+force`,
		},
	},
	{
		name:     "wire_removal_rigs",
		severity: SeverityMedium,
		keywords: []string{
			`\bwire[sd]?\b`,
			`\brig(?:s|ged|ging)?\b`,
			`\bharness(?:es|ed)?\b`,
			`\bsuspend(?:s|ed|ing)?\b`,
			`\bpulley\b`,
			`\bcable[sd]?\b`,
		},
		exclusions: []string{
			`wire\s*(?:less|tap|transfer|fraud)`,
			`rig\s*(?:orous|ht|id)`,
		},
	},
	{
		name:     "cleanup_paint",
		severity: SeverityLow,
		keywords: []string{
			`\bremove[sd]?\s+(?:the\s+)?(?:rig|wire|crew|equipment)\b`,
			`\bpaint\s*(?:out|fix)\b`,
			`\bclean\s*(?:up|plate)\b`,
			`\berase[sd]?\b`,
		},
		exclusions: []string{
			// Inflected paint forms only: RE2 has no lookahead, and bare
			// "paint" directly before out/fix is the positive keyword.
			`paint(?:ing|ed|brush|er|s)\b`,
		},
	},
	{
		name:     "screen_inserts",
		severity: SeverityLow,
		keywords: []string{
			`\bscreen\b`,
			`\bmonitor[sd]?\b`,
			`\bphone\s*(?:screen|display)\b`,
			`\btablet\s*(?:screen|display)\b`,
			`\bTV\b`,
			`\btelevision\b`,
			`\blaptop\s*(?:screen|display)\b`,
			`\bcomputer\s*(?:screen|display|monitor)\b`,
			`\bhologram[sd]?\b`,
			`\bHUD\b`,
			`\bheads[\s-]?up\s*display\b`,
		},
		exclusions: []string{
			`screen\s*(?:play|writer|writing|door)`,
		},
	},
	{
		name:     "set_extensions",
		severity: SeverityMedium,
		keywords: []string{
			`\bgreen\s*screen\b`,
			`\bblue\s*screen\b`,
			`\bchroma\s*key\b`,
			`\bbackdrop\b`,
			`\bbackground\s+(?:plate|replace|extend)\b`,
			`\bset\s+(?:extension|extend)\b`,
			`\bvirtual\s+(?:set|production|wall|environment)\b`,
			`\bLED\s*(?:wall|volume|stage)\b`,
		},
	},
	{
		name:     "reflections_glass",
		severity: SeverityLow,
		keywords: []string{
			`\bmirror[sd]?\b`,
			`\breflect(?:s|ed|ing|ion[sd]?)?\b`,
			`\bglass\b`,
			`\bwindow[sd]?\b`,
		},
		exclusions: []string{
			`glass\s*(?:of\s+(?:water|wine|milk|juice|beer))`,
			`mirror\s*(?:ing|ed)\s+(?:his|her|the)\s+(?:action|move|expression)`,
			`window\s+(?:seat|shade|blind|curtain|sill|pane|ledge|frame)`,
		},
	},
	{
		name:     "beauty_retouching",
		severity: SeverityMedium,
		keywords: []string{
			`\bage[sd]?\b.*\b(?:prosthetic|makeup|digital)\b`,
			`\bde[\s-]?ag(?:e[sd]?|ing)\b`,
			`\byoung(?:er)?\s+version\b`,
			`\bold(?:er)?\s+version\b`,
			`\bblemish\b`,
			`\bscar\s+(?:removal|cover|hide)\b`,
			`\bskin\s+(?:smooth|retouch|fix|clean)\b`,
		},
	},
	{
		name:     "rig_removal",
		severity: SeverityMedium,
		keywords: []string{
			`\bsafety\s*(?:wire|harness|rig|line|cable|net)\b`,
			`\bstunt\s*(?:rig|wire|cable|harness|pad|mat)\b`,
			`\bflying\s*(?:rig|harness|wire)\b`,
			`\bcrash\s*(?:pad|mat)\b`,
		},
	},
	{
		name:     "stabilization",
		severity: SeverityLow,
		keywords: []string{
			`\bshak(?:y|ing)\s*(?:cam|camera|shot|footage)\b`,
			`\bhand[\s-]?held\b`,
			`\bsteadicam\b`,
			`\bstabiliz(?:e[sd]?|ing|ation|er)\b`,
		},
	},
}
