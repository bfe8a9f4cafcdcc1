package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shengwang-Community/ShengwangBeautyView/assets"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/effects"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/presenter"
)

func init() {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the control panel pages without opening a window",
		RunE:  runPages,
	}
	cmd.Flags().Bool("json", false, "Output JSON")
	cmd.Flags().String("filter", "", "Apply a filter template first")
	cmd.Flags().Float64("filter-strength", 0.5, "Strength for --filter")
	cmd.Flags().String("sticker", "", "Apply a sticker template first")
	rootCmd.AddCommand(cmd)
}

type itemDump struct {
	Name     string           `json:"name"`
	Label    string           `json:"label"`
	Kind     string           `json:"kind"`
	Value    float64          `json:"value"`
	Range    model.ValueRange `json:"range"`
	Stepped  bool             `json:"stepped"`
	Selected bool             `json:"selected"`
	Slider   bool             `json:"slider"`
	Toggled  bool             `json:"toggled,omitempty"`
}

type pageDump struct {
	Name     string     `json:"name"`
	Module   string     `json:"module"`
	Selected bool       `json:"selected"`
	Items    []itemDump `json:"items"`
}

func dumpPages(pages []*model.PageInfo) []pageDump {
	out := make([]pageDump, 0, len(pages))
	for _, p := range pages {
		pd := pageDump{Name: p.Name, Module: p.Module.String(), Selected: p.Selected}
		for _, it := range p.Items {
			pd.Items = append(pd.Items, itemDump{
				Name:     it.Name,
				Label:    assets.Label(it.Name),
				Kind:     it.Kind.String(),
				Value:    it.Value,
				Range:    it.Range,
				Stepped:  it.Range.Stepped(),
				Selected: it.Selected,
				Slider:   it.ShowSlider,
				Toggled:  it.Toggled,
			})
		}
		out = append(out, pd)
	}
	return out
}

func writePages(w io.Writer, pages []pageDump, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pages)
	}
	for _, p := range pages {
		mark := " "
		if p.Selected {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s (%s)\n", mark, assets.Label(p.Name), p.Module)
		for _, it := range p.Items {
			sel := " "
			if it.Selected {
				sel = ">"
			}
			value := ""
			if it.Slider {
				r := it.Range
				value = fmt.Sprintf(" %s [%s..%s]", r.Format(it.Value), r.Format(r.Min), r.Format(r.Max))
			}
			fmt.Fprintf(w, "  %s %-28s %-7s%s\n", sel, it.Label, it.Kind, value)
		}
	}
	return nil
}

// headlessPages attaches a facade to a virtual engine and builds the pages.
func headlessPages(logger *slog.Logger, filter string, strength float64, sticker string) ([]*model.PageInfo, error) {
	engine, err := effects.NewSimulator(effects.Options{AllowVirtual: true, Logger: logger})
	if err != nil {
		return nil, err
	}
	fx := beauty.NewFacade(logger, nil, nil)
	if err := fx.Initialize(engine); err != nil {
		return nil, err
	}
	defer fx.Uninitialize()
	p := presenter.NewBeautyPresenter(fx, presenter.DefaultPageBuilders(fx), nil, nil, logger)
	p.Attach()
	defer p.Detach()
	if filter != "" {
		fx.ApplyFilter(filter, strength)
	}
	if sticker != "" {
		fx.ApplySticker(sticker)
	}
	return p.Pages(), nil
}

func runPages(cmd *cobra.Command, args []string) error {
	_, logger := loadConfig(os.Stderr)
	asJSON, _ := cmd.Flags().GetBool("json")
	filter, _ := cmd.Flags().GetString("filter")
	strength, _ := cmd.Flags().GetFloat64("filter-strength")
	sticker, _ := cmd.Flags().GetString("sticker")

	pages, err := headlessPages(logger, filter, strength, sticker)
	if err != nil {
		return fmt.Errorf("build pages: %w", err)
	}
	return writePages(cmd.OutOrStdout(), dumpPages(pages), asJSON)
}
