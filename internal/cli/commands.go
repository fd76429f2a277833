package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/economy"
)

func registerCommands(r *Registry) {
	r.Register(helpCommand(r))
	r.Register(inventoryCommand)
	r.Register(exitCommand)
	r.Register(gardenCommand)
	r.Register(plantCommand)
	r.Register(harvestCommand)
	r.Register(themeCommand)
}

func helpCommand(r *Registry) *Command {
	return &Command{
		Aliases:     []string{"help"},
		Description: "Print this help message or more information about a command",
		Usage:       []string{"help", "help [command]"},
		Help: []string{
			"Show information about all available commands or show more information about a particular command.",
			"Type help by itself for a list of commands.",
			"Type help [command] for information about a specific command.",
			"E.g. help inventory",
		},
		Run: func(_ context.Context, a *App, args []string) error {
			if len(args) > 0 {
				cmd, ok := r.Lookup(args[0])
				if !ok {
					if suggestion, found := r.Suggest(args[0]); found {
						return userErrorf(MsgHelpUnknownFmt+". "+MsgDidYouMeanFmt, args[0], suggestion)
					}
					return userErrorf(MsgHelpUnknownFmt, args[0])
				}
				a.printf(MsgHelpAliasesFmt, joinStyled(cmd.Aliases, a.style.Alias))
				a.printf(MsgHelpUsageFmt, joinStyled(cmd.Usage, a.style.Usage))
				a.println()
				for _, line := range cmd.Help {
					a.println(line)
				}
				return nil
			}

			commands := r.Commands()
			usages := make([]string, len(commands))
			for i, cmd := range commands {
				usages[i] = strings.Join(cmd.Usage, ", ")
			}
			width := maxWidth(usages) + columnGap

			a.println(a.style.Heading(MsgHelpCommands))
			for i, cmd := range commands {
				a.println("\t" + column(usages[i], joinStyled(cmd.Usage, a.style.Usage), width) + cmd.Description)
			}
			return nil
		},
	}
}

var inventoryCommand = &Command{
	Aliases:     []string{"inventory", "inv"},
	Description: "List inventory or show information about an item in the inventory",
	Usage:       []string{"inventory", "inventory [index]"},
	Help: []string{
		"Show information about the whole inventory, or information about a specific item in the inventory.",
		"Type inventory to show a list of all items.",
		"Type inventory [index] to show more information about the item at index [index].",
		"E.g. inventory 2",
	},
	Run: func(_ context.Context, a *App, args []string) error {
		ledger := a.state.Inventory
		stacks := ledger.All()

		if len(args) > 0 {
			index, ok := parseIndex(args[0])
			if !ok {
				return userErrorf(MsgInventoryNotNumberFmt, args[0], "inventory 2")
			}
			stack, err := ledger.Get(index)
			switch {
			case errors.Is(err, domain.ErrIndexOutOfRange) && len(stacks) == 0:
				return userErrorf(MsgInventoryEmptyIndexFmt, args[0])
			case errors.Is(err, domain.ErrIndexOutOfRange):
				return userErrorf(MsgInventoryBadIndexFmt, args[0], len(stacks)-1)
			case err != nil:
				return err
			}
			a.printf(MsgInventoryItemSummaryFmt,
				a.names.ItemName(stack.Kind, stack.SpeciesID),
				a.names.ItemSummary(stack.Kind, stack.SpeciesID))
			return nil
		}

		if len(stacks) == 0 {
			a.println(MsgInventoryEmpty)
			return nil
		}

		labels := make([]string, len(stacks))
		for i, stack := range stacks {
			labels[i] = fmt.Sprintf("[%d] %s", i, a.names.ItemName(stack.Kind, stack.SpeciesID))
		}
		width := maxWidth(labels) + columnGap
		for i, stack := range stacks {
			styled := fmt.Sprintf("[%s] %s", a.style.Command(strconv.Itoa(i)), a.names.ItemName(stack.Kind, stack.SpeciesID))
			a.println(column(labels[i], styled, width) + fmt.Sprintf("x%d", stack.Amount))
		}
		return nil
	},
}

var exitCommand = &Command{
	Aliases:     []string{"exit", "quit"},
	Description: "Exit the application",
	Usage:       []string{"exit"},
	Help:        []string{"Exits the application. Your garden keeps growing while you are away."},
	Run: func(_ context.Context, a *App, _ []string) error {
		a.println(MsgFarewell)
		a.quit = true
		return nil
	},
}

var gardenCommand = &Command{
	Aliases:     []string{"garden"},
	Description: "Show the garden or information about one garden slot",
	Usage:       []string{"garden", "garden [index]"},
	Help: []string{
		"Show how every plant in the garden is growing, or describe the plant in one slot.",
		"E.g. garden 0",
	},
	Run: func(ctx context.Context, a *App, args []string) error {
		g := a.state.Garden
		if _, err := g.UpdateMaturities(ctx); err != nil {
			return err
		}

		if len(args) > 0 {
			index, ok := parseIndex(args[0])
			if !ok {
				return userErrorf(MsgGardenNotNumberFmt, args[0], "garden 2")
			}
			entry, err := g.SlotEntry(index)
			if errors.Is(err, domain.ErrIndexOutOfRange) {
				return userErrorf(MsgGardenBadIndexFmt, args[0], g.Size()-1)
			}
			if err != nil {
				return err
			}
			if entry == nil {
				a.println(MsgEmptySlot)
				return nil
			}
			a.printf("%s: %s", a.names.PlantName(entry.SpeciesID), a.names.StageSummary(entry))
			return nil
		}

		stages := g.Stages()
		for i, entry := range g.Slots() {
			index := a.style.Command(strconv.Itoa(i))
			if entry == nil {
				a.printf("[%s] %s", index, MsgEmptySlot)
				a.println("\t" + MsgEmptySlotSummary)
				continue
			}
			a.printf("[%s] %s (%s)", index, a.names.PlantName(entry.SpeciesID), bandLabel(stages.Band(entry.Stage)))
			a.println("\t" + a.names.StageSummary(entry))
		}
		return nil
	},
}

var plantCommand = &Command{
	Aliases:     []string{"plant"},
	Description: "Plant a seed from the inventory into the garden",
	Usage:       []string{"plant [inventory index]"},
	Help: []string{
		"Take one seed from the inventory and plant it in the first empty garden slot.",
		"Use inventory to find the index of a seed. E.g. plant 0",
	},
	Run: func(ctx context.Context, a *App, args []string) error {
		if len(args) == 0 {
			return userErrorf(MsgPlantMissingIndex)
		}
		index, ok := parseIndex(args[0])
		if !ok {
			return userErrorf(MsgPlantNotNumber)
		}
		if _, err := a.state.Garden.UpdateMaturities(ctx); err != nil {
			return err
		}

		// Resolve the name first; the stack may be gone once the seed is planted.
		var name string
		if stack, err := a.state.Inventory.Get(index); err == nil {
			name = a.names.ItemName(stack.Kind, stack.SpeciesID)
		}

		result, err := a.economy.PlantFromInventory(ctx, index)
		switch {
		case errors.Is(err, domain.ErrEmptyInventory):
			return userErrorf(MsgPlantEmpty)
		case errors.Is(err, domain.ErrIndexOutOfRange):
			return userErrorf(MsgPlantOutOfRange, a.state.Inventory.StackCount()-1)
		case errors.Is(err, domain.ErrNotASeed):
			return userErrorf(MsgPlantNotASeedFmt, index, name)
		case errors.Is(err, domain.ErrGardenFull):
			return userErrorf(MsgPlantGardenFull)
		case err != nil:
			return err
		}

		remaining := a.state.Inventory.Amount(domain.KindSeed, result.SpeciesID)
		a.printf(MsgPlantedFmt, name, result.Slot, remaining)
		return nil
	},
}

var harvestCommand = &Command{
	Aliases:     []string{"harvest"},
	Description: "Harvest a plant from the garden in its current state",
	Usage:       []string{"harvest [garden index]", "harvest all"},
	Help: []string{
		"Pull up a plant and collect whatever it has produced so far.",
		"Growing plants give back seeds, flowering plants give seeds and flowers,",
		"and plants gone to seed give plenty of seeds.",
		"Type harvest all to harvest every plant at once.",
	},
	Run: func(ctx context.Context, a *App, args []string) error {
		if len(args) == 0 {
			return userErrorf(MsgHarvestMissingIndex)
		}
		g := a.state.Garden
		if _, err := g.UpdateMaturities(ctx); err != nil {
			return err
		}

		if strings.EqualFold(args[0], HarvestAllArg) {
			result, err := a.economy.HarvestAll(ctx)
			if err != nil {
				return err
			}
			if len(result.Payloads) == 0 {
				a.println(MsgHarvestNothing)
				return nil
			}
			a.printf(MsgHarvestedAllFmt, len(result.Payloads))
			a.printHarvest(result)
			return a.announce(ctx, "\n"+MsgIdentifiedNew, result.SpeciesIDs()...)
		}

		index, ok := parseIndex(args[0])
		if !ok {
			return userErrorf(MsgHarvestNotNumber)
		}

		var name string
		if entry, err := g.SlotEntry(index); err == nil && entry != nil {
			name = a.names.PlantName(entry.SpeciesID)
		}

		result, err := a.economy.HarvestSlot(ctx, index)
		switch {
		case errors.Is(err, domain.ErrIndexOutOfRange):
			return userErrorf(MsgHarvestOutOfRange, g.Size()-1)
		case errors.Is(err, domain.ErrSlotEmpty):
			return userErrorf(MsgHarvestSlotEmptyFmt, index)
		case err != nil:
			return err
		}

		a.printf(MsgHarvestedFmt, name, bandLabel(result.Payloads[0].Band))
		a.printHarvest(result)
		return a.announce(ctx, "\n"+MsgIdentifiedNew, result.SpeciesIDs()...)
	},
}

var themeCommand = &Command{
	Aliases:     []string{"theme"},
	Description: "Toggle the theme between light and dark",
	Usage:       []string{"theme"},
	Help: []string{
		"Toggle the current display theme. There are light and dark themes so this command toggles between the two.",
	},
	Run: func(ctx context.Context, a *App, _ []string) error {
		theme, err := a.state.ToggleTheme(ctx)
		if err != nil {
			return err
		}
		a.applyTheme(theme)
		a.clearScreen()
		a.println(MsgClearedScreen)
		a.println(a.style.Message(fmt.Sprintf(MsgThemeSwitchFmt, a.style.Name())))
		return nil
	},
}

func (a *App) printHarvest(result *economy.HarvestResult) {
	a.println(MsgHarvestGot)
	for _, item := range result.Items {
		a.printf(MsgHarvestLineFmt, item.Amount, a.names.ItemName(item.Kind, item.SpeciesID))
	}
}

func joinStyled(values []string, style func(string) string) string {
	styled := make([]string, len(values))
	for i, v := range values {
		styled[i] = style(v)
	}
	return strings.Join(styled, ", ")
}
