package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/tokenpage/copyctl"
	"github.com/eringen/tokenpage/linkres"
)

var esc = templ.EscapeString

// LinkButton renders one outbound link slot. A live link opens in a new
// browsing context without leaking the referrer. A placeholder has no
// href and stays keyboard reachable as a disabled button.
func LinkButton(spec LinkSpec) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeLinkButton(&buf, spec)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeLinkButton(buf *bytes.Buffer, spec LinkSpec) {
	link := linkres.Resolve(spec.Raw)
	if link.Enabled {
		buf.WriteString(`<a href="` + esc(link.Target) + `" target="` + link.TargetAttr() + `" rel="` + link.Rel() + `"`)
		buf.WriteString(` data-link="` + esc(spec.Key) + `" class="` + LinkClass(true, spec.Primary) + `">`)
		buf.WriteString(esc(spec.liveText()))
		buf.WriteString(`</a>`)
		return
	}
	pending := PendingLabel(spec.Label)
	buf.WriteString(`<span role="button" tabindex="0" aria-disabled="true" aria-label="` + esc(pending) + `"`)
	buf.WriteString(` data-link="` + esc(spec.Key) + `" class="` + LinkClass(false, spec.Primary) + `">`)
	if spec.Primary {
		buf.WriteString(esc(pending))
	} else {
		buf.WriteString(esc(spec.Label))
	}
	buf.WriteString(`</span>`)
}

// CopyCard renders the contract-address card for widget. The card and
// its inner button are the widget's two activation surfaces; copy.js
// binds them in the browser. Both carry the full address, only the
// visible text is shortened. The button starts with the widget's current
// label and carries both labels for the runtime.
func CopyCard(widget *copyctl.Widget, trustLine string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeCopyCard(&buf, widget, trustLine)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeCopyCard(buf *bytes.Buffer, widget *copyctl.Widget, trustLine string) {
	full := esc(widget.Controller().Source())
	buf.WriteString(`<div class="rounded-3xl border border-white/10 bg-slate-900/35 p-5" role="button" tabindex="0"`)
	buf.WriteString(` aria-label="Copy contract address" data-copy-card data-copy="` + full + `">`)
	buf.WriteString(`<p class="text-center text-xs text-white/40">Contract Address</p>`)
	buf.WriteString(`<div class="mt-3 flex items-center justify-between gap-3 rounded-2xl bg-white/5 p-4">`)
	buf.WriteString(`<div class="min-w-0 text-left"><p class="text-[11px] text-white/40">Tap to copy</p>`)
	buf.WriteString(`<code class="block truncate font-mono text-sm text-white/90" title="` + full + `">`)
	buf.WriteString(esc(widget.Display()))
	buf.WriteString(`</code></div>`)
	buf.WriteString(`<button type="button" data-copy-button data-copy="` + full + `"`)
	buf.WriteString(` data-label-idle="` + esc(copyctl.LabelIdle) + `" data-label-copied="` + esc(copyctl.LabelCopied) + `"`)
	buf.WriteString(` class="shrink-0 rounded-lg bg-white/15 px-3 py-2 text-xs font-semibold text-white/85">`)
	buf.WriteString(esc(widget.Label()) + `</button>`)
	buf.WriteString(`</div>`)
	buf.WriteString(`<p class="mt-3 text-center text-[11px] text-white/35">` + esc(trustLine) + `</p>`)
	buf.WriteString(`</div>`)
}
