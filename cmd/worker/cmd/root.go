package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pesaledger/go-ledger-core/cmd/setup"
	helperFlag "github.com/pesaledger/go-ledger-core/internal/common/flag"
	"github.com/pesaledger/go-ledger-core/internal/common/graceful"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/deliveries/job"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application for configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var j *job.Job

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "v1", "job version")
	runJobCmd.Flags().StringP(runJobCmdTenant, "t", "", "tenant id")
	runJobCmd.MarkFlagRequired(runJobCmdTenant)
	runJobCmd.Flags().StringP(runJobCmdActor, "a", "worker", "actor id recorded on audit rows")
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date (YYYY-MM-DD)")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job name and version",
	Long:  ``,
	Run:   list,
}

func list(ccmd *cobra.Command, args []string) {
	if j == nil {
		// Routes are static, no need for config or live services here.
		j = job.New(config.Config{}, &services.Services{})
	}
	for version, l := range j.Routes {
		for name := range l {
			fmt.Printf("version=%s, name=%s\n", version, name)
		}
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -t={tenant-id} -d={job-date}",
		Run:     runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdTenant  = "tenant"
	runJobCmdActor   = "actor"
	runJobCmdDate    = "date"
)

func runJob(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	tenantID, _ := ccmd.Flags().GetString(runJobCmdTenant)
	actorID, _ := ccmd.Flags().GetString(runJobCmdActor)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)

	s, stoppers, err := setup.Init("worker")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	j = job.New(s.Config, s.Service)
	j.Start(ctx, helperFlag.Job{
		JobName:  name,
		Version:  version,
		TenantID: tenantID,
		ActorID:  actorID,
		Date:     date,
	})
	log.Info(ctx, "job worker stopped!")
}
