package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fuellabs/fuel-proving-games/internal/core/fixtures"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// blockExecutionCmd 区块执行游戏命令组
var blockExecutionCmd = &cobra.Command{
	Use:   "block-execution",
	Short: "区块执行游戏",
	Long: `区块执行游戏的执行与证明

可用的fixture:
  ` + strings.Join(blockExecutionFixtureNames(), "\n  "),
}

// blockExecutionExecuteCmd 执行区块执行fixture
var blockExecutionExecuteCmd = &cobra.Command{
	Use:   "execute-fixture <fixture>",
	Short: "以trace-and-report模式执行fixture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := fixtures.ParseBlockExecutionFixture(args[0])
		if err != nil {
			return err
		}

		report, err := harness.BlockExecutionExecutor.ExecuteFixture(fixture)
		if err != nil {
			return err
		}

		printReport(cmd, string(fixture), report)
		return nil
	},
}

// blockExecutionProveCmd 证明区块执行fixture
var blockExecutionProveCmd = &cobra.Command{
	Use:   "prove-fixture <fixture> <mode>",
	Short: "生成并验证fixture的证明 (mode: core|groth16|plonk)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := fixtures.ParseBlockExecutionFixture(args[0])
		if err != nil {
			return err
		}
		mode, err := proving.ParseProvingMode(args[1])
		if err != nil {
			return err
		}

		prover := harness.BlockExecutionProver

		proof, vk, err := prover.ProveFixture(fixture, mode)
		if err != nil {
			return err
		}
		if err := prover.Verify(proof, vk); err != nil {
			return err
		}

		cmd.Printf("proof generated and verified: fixture=%s, mode=%s, proof_bytes=%d\n",
			fixture, mode, len(proof.Proof))

		// 只有链上可验证的模式才导出Solidity fixture
		if mode.SupportsOnChainVerification() {
			if err := prover.CreateSolidityFixture(proof, vk, outputDir()); err != nil {
				return err
			}
			cmd.Printf("solidity fixture written to %s\n", outputDir())
		}
		return nil
	},
}

// printReport 打印执行报告
func printReport(cmd *cobra.Command, fixture string, report *proving.ExecutionReport) {
	cmd.Printf("fixture: %s\n", fixture)
	cmd.Printf("total instructions: %d\n", report.TotalInstructionCount)
	cmd.Printf("total syscalls:     %d\n", report.TotalSyscallCount)
	cmd.Printf("touched memory:     %d\n", report.TouchedMemoryAddresses)
}

// blockExecutionFixtureNames 列出全部区块执行fixture名称
func blockExecutionFixtureNames() []string {
	all := fixtures.AllBlockExecutionFixtures()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = string(f)
	}
	return names
}

func init() {
	blockExecutionCmd.AddCommand(blockExecutionExecuteCmd)
	blockExecutionCmd.AddCommand(blockExecutionProveCmd)
}
