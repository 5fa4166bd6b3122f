package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SFerenczy/FringeTactics-sub005/internal/campaign"
	"github.com/SFerenczy/FringeTactics-sub005/internal/encounter"
	"github.com/SFerenczy/FringeTactics-sub005/internal/travel"
	"github.com/SFerenczy/FringeTactics-sub005/internal/world"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		from        string
		to          string
		fuel        int
		contentPath string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 1, "campaign seed")
	flag.StringVar(&from, "from", "hale_station", "origin location id or name")
	flag.StringVar(&to, "to", "scrapline", "destination location id or name")
	flag.IntVar(&fuel, "fuel", 120, "starting fuel")
	flag.StringVar(&contentPath, "content", "", "extra encounter template YAML file")
	flag.Parse()

	if showVersion {
		fmt.Printf("fringesim %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(seed, from, to, fuel, contentPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(seed int64, from, to string, fuel int, contentPath string) error {
	graph := world.BuiltInSector()

	origin, ok := graph.FindLocation(from)
	if !ok {
		return fmt.Errorf("unknown origin %q", from)
	}
	destination, ok := graph.FindLocation(to)
	if !ok {
		return fmt.Errorf("unknown destination %q", to)
	}

	registry := encounter.NewRegistry()
	for _, template := range encounter.BuiltInTemplates() {
		if err := registry.Register(template); err != nil {
			return fmt.Errorf("register template %s: %w", template.ID, err)
		}
	}
	if contentPath != "" {
		templates, err := encounter.LoadTemplates(contentPath)
		if err != nil {
			return err
		}
		for _, template := range templates {
			if err := registry.Register(template); err != nil {
				return fmt.Errorf("register template %s: %w", template.ID, err)
			}
		}
	}

	c := campaign.New(campaign.Config{
		Seed:    seed,
		Fuel:    fuel,
		Credits: 500,
		Crew:    defaultCrew(),
	})

	planner := travel.NewPlanner(graph, travel.ShipProfile{Speed: 100, Efficiency: 1.0, SafetyWeight: 0.5})
	plan := planner.PlanRoute(origin.ID, destination.ID)
	if !plan.Valid {
		return fmt.Errorf("no usable plan from %s to %s: %s", origin.Name, destination.Name, plan.Reason)
	}
	printPlan(graph, plan)
	if !planner.Validate(plan, c.Fuel()) {
		return fmt.Errorf("not enough fuel: need %d, have %d", plan.TotalFuel, c.Fuel())
	}

	executor := travel.NewExecutor(graph, registry)
	input := bufio.NewScanner(os.Stdin)

	result := executor.Execute(plan, c)
	for result.Status == travel.StatusPausedForEncounter {
		delay, err := playEncounter(input, graph, c, result.State)
		if err != nil {
			return err
		}
		result = executor.Resume(result.State, c, travel.EncounterOutcome{Completed: true, DelayDays: delay})
	}

	switch result.Status {
	case travel.StatusCompleted:
		fmt.Printf("\nArrived at %s: %d fuel burned, %d days underway. Day is now %d, %d fuel remains.\n",
			destination.Name, result.FuelSpent, result.DaysElapsed, c.Day, c.Fuel())
		if len(c.PendingMissions) > 0 {
			fmt.Printf("Tactical missions pending: %s\n", strings.Join(c.PendingMissions, ", "))
		}
	case travel.StatusInterrupted:
		fmt.Printf("\nJourney interrupted (%s) after %d days and %d fuel.\n",
			result.Reason, result.DaysElapsed, result.FuelSpent)
	}
	return nil
}

func printPlan(graph *world.Graph, plan *travel.Plan) {
	fmt.Printf("Plotting %s -> %s\n", plan.Origin, plan.Destination)
	for i, seg := range plan.Segments {
		toLoc, _ := graph.Location(seg.To)
		name := string(seg.To)
		if toLoc != nil {
			name = toLoc.Name
		}
		fmt.Printf("  leg %d: %s (%.0f units, %d days, %d fuel, risk %.0f%%/day)\n",
			i+1, name, seg.Distance, seg.Days, seg.FuelCost, seg.EncounterChance*100)
	}
	fmt.Printf("  total: %d fuel, %d days\n", plan.TotalFuel, plan.TotalDays)
}

// playEncounter drives the paused encounter one choice at a time until it
// completes, applies the drained effects, and reports any travel delay.
func playEncounter(input *bufio.Scanner, graph *world.Graph, c *campaign.Campaign, state *travel.State) (int, error) {
	instance := state.Encounter
	seg := &state.Plan.Segments[state.SegmentIndex]
	loc, _ := graph.Location(seg.To)

	fmt.Printf("\n== %s ==\n", instance.Template.Name)
	shown := 0
	shown = printNewNodes(instance, shown)

	for !instance.Complete {
		ctx := c.BuildContext(loc, seg.HazardLevel, "")
		options := encounter.AvailableOptions(instance, ctx)
		if len(options) == 0 {
			break
		}
		for i, opt := range options {
			line := instance.RenderText(opt.Text)
			if opt.Check != nil {
				line = fmt.Sprintf("%s (%s check, ~%d%%)", line, opt.Check.Stat, opt.Check.SuccessChance(ctx.Crew))
			}
			fmt.Printf("  [%d] %s\n", i+1, line)
		}

		choice, err := readChoice(input, len(options))
		if err != nil {
			return 0, err
		}
		step := encounter.SelectOption(instance, ctx, choice)
		if step.Err != nil {
			fmt.Printf("  %v\n", step.Err)
			continue
		}
		if step.Check != nil {
			printCheck(step.Check)
		}
		shown = printNewNodes(instance, shown)
	}

	applied, err := c.Apply(instance.DrainEffects())
	if err != nil {
		return 0, err
	}
	if applied.DelayDays > 0 {
		fmt.Printf("  (lost %d day(s))\n", applied.DelayDays)
	}
	return applied.DelayDays, nil
}

// printNewNodes renders the text of every node visited since the last call.
func printNewNodes(instance *encounter.Instance, shown int) int {
	for ; shown < len(instance.History); shown++ {
		if node, ok := instance.Template.Node(instance.History[shown]); ok && node.Text != "" {
			fmt.Printf("%s\n", instance.RenderText(node.Text))
		}
	}
	return shown
}

func printCheck(check *encounter.CheckResult) {
	name := "nobody"
	if check.Crew != nil {
		name = check.Crew.Name
	}
	verdict := "failure"
	if check.Success {
		verdict = "success"
	}
	if check.CriticalSuccess {
		verdict = "critical success"
	} else if check.CriticalFailure {
		verdict = "critical failure"
	}
	fmt.Printf("  %s rolls %d + %d stat %+d traits = %d: %s\n",
		name, check.Roll, check.StatValue, check.TraitBonus, check.Total, verdict)
}

func readChoice(input *bufio.Scanner, count int) (int, error) {
	for {
		fmt.Print("> ")
		if !input.Scan() {
			return 0, fmt.Errorf("input closed")
		}
		raw := strings.TrimSpace(input.Text())
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > count {
			fmt.Printf("  pick a number between 1 and %d\n", count)
			continue
		}
		return n - 1, nil
	}
}

func defaultCrew() []*campaign.CrewMember {
	return []*campaign.CrewMember{
		{ID: "crew_1", Name: "Ress Vale", Alive: true,
			Traits: []string{"daredevil"},
			Stats:  encounter.StatBlock{Pilot: 6, Gunnery: 3, Engineering: 2, Medicine: 1, Savvy: 3, Grit: 4}},
		{ID: "crew_2", Name: "Imari Okoye", Alive: true,
			Traits: []string{"silver_tongue"},
			Stats:  encounter.StatBlock{Pilot: 2, Gunnery: 2, Engineering: 3, Medicine: 4, Savvy: 6, Grit: 3}},
		{ID: "crew_3", Name: "Dez Calder", Alive: true,
			Traits: []string{"tinkerer"},
			Stats:  encounter.StatBlock{Pilot: 3, Gunnery: 4, Engineering: 6, Medicine: 2, Savvy: 2, Grit: 5}},
	}
}
