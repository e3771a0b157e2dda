package main

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperjump/vecscan/internal/cli"
	"github.com/hyperjump/vecscan/internal/codec"
	"github.com/hyperjump/vecscan/internal/vector"
	"github.com/hyperjump/vecscan/pkg/utils"
)

var (
	encodeNormalize bool
	encodeFP64As32  bool
	encodeRaw       bool
	decodeOutput    string
)

var encodeCmd = &cobra.Command{
	Use:   "encode <values>",
	Short: "Encode a list of numbers as a vector",
	Long: `Encodes comma or space separated numbers as a base64 vector, or as raw
little-endian bytes with --raw. The dimension is the number of values unless
--dim is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <base64>",
	Short: "Decode a base64 vector into numbers",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeNormalize, "normalize", false, "scale to unit L2 norm before encoding")
	encodeCmd.Flags().BoolVar(&encodeFP64As32, "fp64as32", false, "emit 4-byte elements regardless of the build's element width")
	encodeCmd.Flags().BoolVar(&encodeRaw, "raw", false, "write raw bytes instead of base64")
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "text", "output format: text or json")
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	values, err := utils.ParseFloats(args[0])
	if err != nil {
		return fmt.Errorf("invalid values: %w", err)
	}
	dim := len(values)
	if dimFlag > 0 {
		dim = dimFlag
	}
	c, err := codec.New(dim)
	if err != nil {
		return err
	}
	if encodeNormalize {
		utils.NormalizeL2(values)
	}

	var b []byte
	if encodeFP64As32 {
		b, err = c.EncodeFloat64As32(values)
	} else {
		v := make([]vector.Float, len(values))
		for i, x := range values {
			v[i] = vector.Float(x)
		}
		b, err = c.Encode(v)
	}
	if err != nil {
		return err
	}

	if encodeRaw {
		_, err = cmd.OutOrStdout().Write(b)
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(b))
	return err
}

func runDecode(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(decodeOutput)
	if err != nil {
		return err
	}
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close(cmd)

	v, err := rt.engine.Codec().DecodeBase64(args[0])
	if err != nil {
		return err
	}
	return cli.WriteVector(cmd.OutOrStdout(), v, format)
}
