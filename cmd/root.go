// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/chainguard/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chainguard",
	Short: "Catch wrong-chain destination addresses before funds are burned",
	Long: `Chainguard is a command line tool that classifies a destination crypto
address by its surface format and tells you whether it is compatible with
the chain you are about to transact on.

Sending funds from an EVM chain to, say, a Bitcoin or Solana address is
irrecoverable — there is no transaction to reverse, the funds are simply
gone. Chainguard recognizes the address formats of the major non-EVM
networks (Bitcoin, Tron, XRP, Litecoin, Cardano, Cosmos, Polkadot, Stellar,
Solana) and flags the mismatch before you sign, together with bridge
services that can move the funds properly.

Classification is purely syntactic: chainguard never validates checksums,
never touches the network, and never judges whether an address actually
exists. A compatible verdict means "this looks like an EVM address", not
"this address is correct" — keep verifying the destination yourself.

Pass the chain you are on with --chain, either as an eip155 identifier
("eip155:1") or a hex chain id ("0x1"). Unknown chain ids are reported as
such rather than rejected.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().
		StringVarP(&config.ChainID, "chain", "c", "eip155:1", "Chain the transaction is being sent on, in \"eip155:<decimal>\" or \"0x<hex>\" form.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
