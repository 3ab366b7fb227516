package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fuellabs/fuel-proving-games/internal/core/fixtures"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// decompressionCmd 解压缩游戏命令组
var decompressionCmd = &cobra.Command{
	Use:   "decompression",
	Short: "解压缩游戏",
	Long: `解压缩游戏的执行与证明

可用的fixture:
  ` + strings.Join(decompressionFixtureNames(), "\n  "),
}

// decompressionExecuteCmd 执行解压缩fixture
var decompressionExecuteCmd = &cobra.Command{
	Use:   "execute-fixture <fixture>",
	Short: "以trace-and-report模式执行fixture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := fixtures.ParseDecompressionFixture(args[0])
		if err != nil {
			return err
		}

		report, err := harness.DecompressionExecutor.ExecuteFixture(fixture)
		if err != nil {
			return err
		}

		printReport(cmd, string(fixture), report)
		return nil
	},
}

// decompressionProveCmd 证明解压缩fixture
var decompressionProveCmd = &cobra.Command{
	Use:   "prove-fixture <fixture> <mode>",
	Short: "生成并验证fixture的证明 (mode: core|groth16|plonk)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := fixtures.ParseDecompressionFixture(args[0])
		if err != nil {
			return err
		}
		mode, err := proving.ParseProvingMode(args[1])
		if err != nil {
			return err
		}

		prover := harness.DecompressionProver

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

// decompressionFixtureNames 列出全部解压缩fixture名称
func decompressionFixtureNames() []string {
	all := fixtures.AllDecompressionFixtures()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = string(f)
	}
	return names
}

func init() {
	decompressionCmd.AddCommand(decompressionExecuteCmd)
	decompressionCmd.AddCommand(decompressionProveCmd)
}
