package sprite

import "sync"

// builtinEntries is the compiled-in sprite sheet.
var builtinEntries = []Entry{
	{Name: AlienA, Rows: []string{
		"..@.....@..",
		"...@...@...",
		"..@@@@@@@..",
		".@@.@@@.@@.",
		"@@@@@@@@@@@",
		"@.@@@@@@@.@",
		"@.@.....@.@",
		"...@@.@@...",
	}},
	{Name: AlienB, Rows: []string{
		"..@.....@..",
		"@..@...@..@",
		"@.@@@@@@@.@",
		"@@@.@@@.@@@",
		"@@@@@@@@@@@",
		".@@@@@@@@@.",
		"..@.....@..",
		".@.......@.",
	}},
	{Name: AlienDead, Rows: []string{
		".@..@...@..@.",
		"..@..@.@..@..",
		"...@.....@...",
		"@@.........@@",
		"...@.....@...",
		"..@..@.@..@..",
		".@..@...@..@.",
	}},
	{Name: Player, Rows: []string{
		".....@.....",
		"....@@@....",
		"....@@@....",
		".@@@@@@@@@.",
		"@@@@@@@@@@@",
		"@@@@@@@@@@@",
		"@@@@@@@@@@@",
	}},
	{Name: Projectile, Width: 1, Height: 3, Data: []uint8{1, 1, 1}},

	{Name: "digit_0", Rows: []string{"@@@", "@.@", "@.@", "@.@", "@@@"}},
	{Name: "digit_1", Rows: []string{".@.", "@@.", ".@.", ".@.", "@@@"}},
	{Name: "digit_2", Rows: []string{"@@@", "..@", "@@@", "@..", "@@@"}},
	{Name: "digit_3", Rows: []string{"@@@", "..@", ".@@", "..@", "@@@"}},
	{Name: "digit_4", Rows: []string{"@.@", "@.@", "@@@", "..@", "..@"}},
	{Name: "digit_5", Rows: []string{"@@@", "@..", "@@@", "..@", "@@@"}},
	{Name: "digit_6", Rows: []string{"@@@", "@..", "@@@", "@.@", "@@@"}},
	{Name: "digit_7", Rows: []string{"@@@", "..@", ".@.", ".@.", ".@."}},
	{Name: "digit_8", Rows: []string{"@@@", "@.@", "@@@", "@.@", "@@@"}},
	{Name: "digit_9", Rows: []string{"@@@", "@.@", "@@@", "..@", "@@@"}},
}

// Builtin returns the compiled-in sprite store. The store is built once and shared.
var Builtin = sync.OnceValue(func() *Store {
	st, err := NewStore(builtinEntries)
	if err != nil {
		panic(err)
	}
	return st
})
