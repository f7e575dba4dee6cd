package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/x1024/shkolo-cli/models"
)

func (a *app) rawCommand() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "raw METHOD ENDPOINT",
		Short: "Perform a raw API request",
		Long: "Sends an arbitrary request with the saved session and prints the\n" +
			"HTTP status and the pretty-printed response body. Useful for\n" +
			"exploring endpoints the regular commands do not cover.",
		Example: "  shkolo raw GET /v1/diary/pupils\n" +
			"  shkolo raw POST /v1/example -d '{\"key\": \"value\"}'",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.ctx(cmd)
			req := models.RawRequest{
				Method:   strings.ToUpper(args[0]),
				Endpoint: args[1],
				Data:     data,
			}
			// an invalid method or body never reaches the network
			if err := a.validator.Validate(ctx, req); err != nil {
				return err
			}
			if err := a.restore(ctx); err != nil {
				return err
			}
			resp, err := a.raw.Raw(ctx, req)
			if err != nil {
				return err
			}
			a.text.Raw(resp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	return cmd
}
