package session

import (
	"fmt"
	"strings"

	"github.com/bikeshare-data/pkg/bikeshare/models"
)

const inputRejected = "Input not accepted"

// Filters is a validated, lowercase selection.
type Filters struct {
	City  string
	Month string
	Day   string
}

// CollectFilters asks for a city, month and day until each is recognized,
// then prints a summary of the selection.
func CollectFilters(p *Prompter) (Filters, error) {
	var (
		f   Filters
		err error
	)
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	f.City, err = p.AskUntil("Would you like to look at "+list(models.CityNames())+"\n", inputRejected, models.IsCity)
	if err != nil {
		return Filters{}, err
	}

	f.Month, err = p.AskUntil("Choose a Month; "+choices(models.Months[:models.FilterableMonths])+"\n", inputRejected, models.IsMonthFilter)
	if err != nil {
		return Filters{}, err
	}

	f.Day, err = p.AskUntil("Choose a day of the week; "+choices(models.Weekdays)+"\n", inputRejected, models.IsDayFilter)
	if err != nil {
		return Filters{}, err
	}

	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	fmt.Fprintf(p.out, "Looking at data from: \n City = %s \n Month = %s \n Day = %s\n",
		models.Title(f.City), models.Title(f.Month), models.Title(f.Day))
	return f, nil
}

// choices renders "January, February, or All" style option lists.
func choices(names []string) string {
	return list(append(names[:len(names):len(names)], models.All))
}

// list title-cases names and joins them as "A, B, or C".
func list(names []string) string {
	titled := make([]string, len(names))
	for i, n := range names {
		titled[i] = models.Title(n)
	}
	if len(titled) < 2 {
		return strings.Join(titled, "")
	}
	return strings.Join(titled[:len(titled)-1], ", ") + ", or " + titled[len(titled)-1]
}
