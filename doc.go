// Package curselect presents the user with a full-screen series of selection
// lists (radio buttons or, for multi-selectables, checkboxes) and captures
// their selections.
//
// Outline of usage:
//
//	form := curselect.NewForm(curselect.FormConfig{})
//	sel, _ := curselect.NewSelector("Flavor", []string{"Vanilla", "Chocolate"}, curselect.WithDefault(0))
//	_ = form.Add("flavor", sel)
//	results, err := form.Run(ctx)
//
// Run returns a map from field name to the field's selection, or a nil map
// if the user cancelled. The selection for a Selector is the selected value
// or nil. The selection for a MultiSelector is a slice of selected values,
// or nil if none were selected and no default set was given.
//
// Keybindings:
//
//	j, down        move down
//	k, up          move up
//	h, left        move left
//	l, right       move right
//	w, pgup        go up a page
//	z, pgdown      go down a page
//	g              go to first item
//	G              go to last item
//	tab            go to next list
//	shift+tab      go to previous list
//	enter, space   select/activate current item
//	ctrl+d         confirm and return selections
//	q, Q           cancel
package curselect
