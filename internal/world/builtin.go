package world

// BuiltInSector builds the demo sector used by the CLI and end-to-end tests.
// Coordinates are laid out so straight-line distances roughly track route
// distances, keeping the planner heuristic honest.
func BuiltInSector() *Graph {
	g := NewGraph()

	locations := []Location{
		{ID: "hale_station", Name: "Hale Station", X: 0, Y: 0, FactionID: "coalition",
			Tags: []string{"station", "patrolled"}, Metrics: Metrics{Security: 4, CriminalActivity: 1}},
		{ID: "veris_prime", Name: "Veris Prime", X: 140, Y: 30, FactionID: "coalition",
			Tags: []string{"core_world", "patrolled"}, Metrics: Metrics{Security: 5, CriminalActivity: 0}},
		{ID: "dray_anchorage", Name: "Dray Anchorage", X: 120, Y: -110, FactionID: "free_traders",
			Tags: []string{"station", "market"}, Metrics: Metrics{Security: 2, CriminalActivity: 3}},
		{ID: "kessel_drift", Name: "Kessel Drift", X: 260, Y: -70, FactionID: "",
			Tags: []string{"asteroid_field", "hidden"}, Metrics: Metrics{Security: 0, CriminalActivity: 4}},
		{ID: "moraine", Name: "Moraine", X: 300, Y: 60, FactionID: "free_traders",
			Tags: []string{"frontier"}, Metrics: Metrics{Security: 1, CriminalActivity: 3}},
		{ID: "ashfall", Name: "Ashfall", X: 420, Y: -20, FactionID: "syndicate",
			Tags: []string{"frontier", "dangerous"}, Metrics: Metrics{Security: 0, CriminalActivity: 5}},
		{ID: "port_unmei", Name: "Port Unmei", X: 380, Y: 140, FactionID: "syndicate",
			Tags: []string{"station", "market"}, Metrics: Metrics{Security: 1, CriminalActivity: 4}},
		{ID: "lighthouse", Name: "The Lighthouse", X: 200, Y: 170, FactionID: "coalition",
			Tags: []string{"outpost", "patrolled"}, Metrics: Metrics{Security: 3, CriminalActivity: 1}},
		{ID: "scrapline", Name: "Scrapline", X: 520, Y: 80, FactionID: "",
			Tags: []string{"derelict_field", "dangerous"}, Metrics: Metrics{Security: 0, CriminalActivity: 5}},
		{ID: "farrow_deep", Name: "Farrow Deep", X: -180, Y: 40, FactionID: "",
			Tags: []string{"isolated"}, Metrics: Metrics{Security: 2, CriminalActivity: 2}},
	}
	for _, loc := range locations {
		if err := g.AddLocation(loc); err != nil {
			panic(err)
		}
	}

	routes := []Route{
		{ID: "hale-veris", A: "hale_station", B: "veris_prime", Distance: 150, HazardLevel: 0, Tags: []string{"patrolled"}},
		{ID: "hale-dray", A: "hale_station", B: "dray_anchorage", Distance: 165, HazardLevel: 1},
		{ID: "hale-farrow", A: "hale_station", B: "farrow_deep", Distance: 185, HazardLevel: 2, Tags: []string{"nebula"}},
		{ID: "veris-lighthouse", A: "veris_prime", B: "lighthouse", Distance: 155, HazardLevel: 0, Tags: []string{"patrolled"}},
		{ID: "veris-dray", A: "veris_prime", B: "dray_anchorage", Distance: 145, HazardLevel: 1},
		{ID: "dray-kessel", A: "dray_anchorage", B: "kessel_drift", Distance: 150, HazardLevel: 3, Tags: []string{"asteroid"}},
		{ID: "kessel-moraine", A: "kessel_drift", B: "moraine", Distance: 140, HazardLevel: 2, Tags: []string{"hidden"}},
		{ID: "kessel-ashfall", A: "kessel_drift", B: "ashfall", Distance: 170, HazardLevel: 4, Tags: []string{"dangerous"}},
		{ID: "moraine-ashfall", A: "moraine", B: "ashfall", Distance: 145, HazardLevel: 3, Tags: []string{"dangerous"}},
		{ID: "moraine-lighthouse", A: "moraine", B: "lighthouse", Distance: 150, HazardLevel: 1},
		{ID: "moraine-unmei", A: "moraine", B: "port_unmei", Distance: 115, HazardLevel: 2},
		{ID: "ashfall-unmei", A: "ashfall", B: "port_unmei", Distance: 165, HazardLevel: 3, Tags: []string{"blockaded"}},
		{ID: "unmei-scrapline", A: "port_unmei", B: "scrapline", Distance: 155, HazardLevel: 4, Tags: []string{"dangerous"}},
		{ID: "ashfall-scrapline", A: "ashfall", B: "scrapline", Distance: 140, HazardLevel: 5, Tags: []string{"dangerous", "nebula"}},
	}
	for _, route := range routes {
		if err := g.AddRoute(route); err != nil {
			panic(err)
		}
	}

	return g
}
