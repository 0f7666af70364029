package shuffle_test

import (
	"fmt"

	"github.com/katalvlaran/hotseq/seq"
	"github.com/katalvlaran/hotseq/shuffle"
)

// ExampleShuffle permutes a window and shows that its composition is
// untouched while the flanks stay put.
func ExampleShuffle() {
	b, _ := seq.Encode(seq.DNA(), "AAAACGTNCGTNTTTT")

	d, err := shuffle.Shuffle(b, shuffle.WithRegion(4, 12), shuffle.WithSeed(7))
	if err != nil {
		fmt.Println("shuffle:", err)
		return
	}

	before, _ := b.Counts(0, seq.Region{Start: 4, End: 12})
	ext, _ := d.Extract(0)
	after, _ := ext.Counts(0, seq.Region{Start: 4, End: 12})

	fmt.Println("draws:", d.DrawCount())
	fmt.Println("composition preserved:", fmt.Sprint(before) == fmt.Sprint(after))
	// Output:
	// draws: 1
	// composition preserved: true
}

// ExampleRandomize draws a fresh background under a degenerate
// distribution: only the positive-weight symbol can appear.
func ExampleRandomize() {
	b, _ := seq.Encode(seq.DNA(), "NNNNNNNN")

	d, err := shuffle.Randomize(b, shuffle.WithBackground([]float64{0, 0, 0, 1}))
	if err != nil {
		fmt.Println("randomize:", err)
		return
	}

	ext, _ := d.Extract(0)
	strs, _ := ext.Strings()
	fmt.Println(strs[0])
	// Output:
	// TTTTTTTT
}
