package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/export"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <payload>",
	Short: "Summarize an emitted payload",
	Long:  "Decode an emitted msgpack payload and print its page structure.",
	Args:  cobra.ExactArgs(1),
	RunE:  inspectExecution,
}

func init() {
	inspectCmd.Flags().Bool("elements", false, "list every element per page")
}

func inspectExecution(cmd *cobra.Command, args []string) error {
	listElements, err := cmd.Flags().GetBool("elements")
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	payload, err := export.Decode(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleTitle.Render(args[0]))
	for i, page := range payload.Pages {
		size := export.PageExtent(page)
		fmt.Fprintf(out, "  page %d: %s %s\n",
			i+1, size.W.String()+" x "+size.H.String(),
			styleDim.Render(fmt.Sprintf("(%d elements)", len(page.Elems))))
		if listElements {
			printElems(out, page.Elems, "    ")
		}
	}
	return nil
}

func printElems(out io.Writer, elems []export.Elem, indent string) {
	for _, e := range elems {
		switch e.Kind {
		case export.ElemText:
			fmt.Fprintf(out, "%stext %q at (%.1f, %.1f)\n", indent, e.Text, e.X, e.Y)
		case export.ElemShape:
			fmt.Fprintf(out, "%sshape %.1fx%.1f at (%.1f, %.1f)\n", indent, e.W, e.H, e.X, e.Y)
		case export.ElemGroup:
			fmt.Fprintf(out, "%sgroup %.1fx%.1f at (%.1f, %.1f)\n", indent, e.W, e.H, e.X, e.Y)
			printElems(out, e.Children, indent+"  ")
		case export.ElemLink:
			fmt.Fprintf(out, "%slink to page %d at (%.1f, %.1f)\n", indent, e.DestPage, e.X, e.Y)
		case export.ElemMeta:
			fmt.Fprintf(out, "%smeta %s loc(%016x/%d)\n", indent, e.NodeKind, e.LocID, e.LocDis)
		}
	}
}
