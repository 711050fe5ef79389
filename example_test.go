package softspi_test

import (
	"context"
	"fmt"
	"time"

	"github.com/edaniels/golog"
	goutils "go.viam.com/utils"

	"github.com/viam-labs/softspi"
	"github.com/viam-labs/softspi/line/fake"
)

func Example() {
	ctx := context.Background()

	// A real bus would use lines from line/gpiocdev or line/periphline; the
	// fake slave echoes written bits back for demonstration.
	slave := fake.NewSlave()
	master, err := softspi.New(ctx, softspi.Config{
		Clock:       slave.Clock(),
		ChipSelect1: &fake.Output{},
		DataOut:     slave.DataOut(),
		DataIn:      slave.DataIn(),
		PulseWidth:  time.Microsecond,
	}, golog.NewLogger("softspi"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer goutils.UncheckedErrorFunc(func() error { return master.Close(ctx) })

	sel, err := master.SelectSlave1(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer goutils.UncheckedErrorFunc(func() error { return sel.Release(ctx) })

	if err := master.WriteWord8(ctx, 0xa5, 8); err != nil {
		fmt.Println(err)
		return
	}
	slave.Load(slave.Captured())
	word, err := master.ReadWord(ctx, 8)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%#x\n", word)
	// Output: 0xa5
}
