package encounter

// Name tables for resolved text parameters. Resolution always fills the same
// fixed parameter set with the same number of stream draws, so the stream
// position after Generate does not depend on which template won the roll.

var npcFirstNames = []string{
	"Jory", "Mira", "Castor", "Ilsa", "Dragan", "Wren", "Okafor", "Tess",
	"Halvar", "Noemi", "Ruiz", "Anya", "Bax", "Sorcha", "Dmitri", "Lena",
}

var npcLastNames = []string{
	"Vance", "Okoye", "Reyes", "Strand", "Kovac", "Marlowe", "Ash", "Petrov",
	"Huang", "Calder", "Ferro", "Nakata", "Soler", "Quinn", "Varga", "Boone",
}

var shipPrefixes = []string{
	"Wayward", "Rust", "Silent", "Crimson", "Pale", "Iron", "Stray", "Bitter",
}

var shipCores = []string{
	"Jackal", "Lantern", "Verdict", "Sparrow", "Mariner", "Gambit", "Harrow", "Comet",
}

var cargoDescriptors = []string{
	"medical supplies", "refined alloys", "sealed data cores", "luxury foodstuffs",
	"mining charges", "unmarked crates", "cryo-stored seed stock", "salvaged drive parts",
}

// resolveParams writes the deterministic parameter set into a fresh instance.
// Location and faction come from the context; generated names each consume a
// fixed number of draws from the stream.
func resolveParams(instance *Instance, ctx *Context) {
	instance.Params["location"] = ctx.LocationName
	faction := ctx.LocationFaction
	if faction == "" {
		faction = "independents"
	}
	instance.Params["faction"] = faction

	first := npcFirstNames[ctx.Stream.IntN(len(npcFirstNames))]
	last := npcLastNames[ctx.Stream.IntN(len(npcLastNames))]
	instance.Params["npc"] = first + " " + last

	prefix := shipPrefixes[ctx.Stream.IntN(len(shipPrefixes))]
	core := shipCores[ctx.Stream.IntN(len(shipCores))]
	instance.Params["ship"] = prefix + " " + core

	instance.Params["cargo"] = cargoDescriptors[ctx.Stream.IntN(len(cargoDescriptors))]
}
