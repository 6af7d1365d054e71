package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/Observe-l/polarsc/internal/config"
)

// WriteMarkdown renders a sweep as a Markdown report.
func WriteMarkdown(w io.Writer, cfg *config.Config, points []Point) error {
	c, d := cfg.Code, cfg.Decoder
	if _, err := fmt.Fprintf(w, "# Polar SC Simulation Report (N=%d, K=%d)\n\n", c.N, c.K); err != nil {
		return err
	}
	fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "- decoder: %s %s, %d frames per batch, intra=%v\n", d.Type, d.Combine, d.Frames, d.Intra)
	fmt.Fprintf(w, "- catalog: `%s`\n", d.Catalog)
	fmt.Fprintf(w, "- quantizer: Q(%d,%d)\n", d.QuantBits, d.QuantFrac)
	fmt.Fprintf(w, "- systematic: %v\n\n", c.Systematic)

	fmt.Fprintf(w, "| Eb/N0 (dB) | Frames | Frame errors | FER | BER | Mbit/s |\n")
	fmt.Fprintf(w, "|---:|---:|---:|---:|---:|---:|\n")
	for _, p := range points {
		fmt.Fprintf(w, "| %.2f | %d | %d | %.3e | %.3e | %.2f |\n",
			p.EbN0, p.Frames, p.FrameErrors, p.FER(), p.BER(), p.Throughput())
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Results is a sweep in the JSON report layout.
type Results []Point

func (r Results) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range r {
		enc.Object(&r[i])
	}
}

func (r Results) IsNil() bool { return r == nil }

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (p *Point) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("ebn0", p.EbN0)
	enc.IntKey("frames", p.Frames)
	enc.IntKey("frame_errors", p.FrameErrors)
	enc.IntKey("bit_errors", p.BitErrors)
	enc.Float64Key("fer", p.FER())
	enc.Float64Key("ber", p.BER())
	enc.Int64Key("decode_ns", int64(p.Decode))
}

func (p *Point) IsNil() bool { return p == nil }

// WriteJSON writes the sweep as a JSON array.
func WriteJSON(w io.Writer, points []Point) error {
	enc := gojay.BorrowEncoder(w)
	defer enc.Release()
	if err := enc.EncodeArray(Results(points)); err != nil {
		return fmt.Errorf("sim: encode report: %w", err)
	}
	return nil
}
