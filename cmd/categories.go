package cmd

import (
	"fmt"
	"strings"

	"github.com/lepinkainen/tidydir/organizer"
	"github.com/lepinkainen/tidydir/ui"
)

type CategoriesCmd struct{}

// Run prints the compiled-in category table in definition order, which
// is also the match order.
func (cmd *CategoriesCmd) Run() error {
	fmt.Println(ui.HeaderStyle.Render("Categories"))

	for _, category := range organizer.DefaultTable {
		fmt.Printf("%s %s\n",
			ui.CategoryStyle.Render(fmt.Sprintf("%-10s", category.Name)),
			strings.Join(category.Extensions, " "))
	}
	fmt.Printf("%s everything else\n",
		ui.CategoryStyle.Render(fmt.Sprintf("%-10s", organizer.CategoryOther)))

	return nil
}
