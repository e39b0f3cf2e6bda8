package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Block is one cell of a shield. Any hit removes it. Blocks are drawn
// with the shared Assets.Block sprite.
type Block struct {
	body
}

// BuildObstacles lays out cfg.Count copies of the shield shape. Copy i
// starts at x = XStart + i*(canvas width / Count).
func BuildObstacles(cfg config.InvadersConfig) []*Block {
	o := cfg.Obstacles
	if o.Count <= 0 {
		return nil
	}
	step := cfg.Canvas.Width / o.Count

	var blocks []*Block
	for i := range o.Count {
		offset := o.XStart + i*step
		for row, line := range o.Shape {
			for col, ch := range line {
				if ch != 'x' {
					continue
				}
				blocks = append(blocks, &Block{
					body: body{rect: core.NewRect(offset+col*o.BlockSize, o.YStart+row*o.BlockSize, o.BlockSize, o.BlockSize)},
				})
			}
		}
	}
	return blocks
}
