package domain

import "fmt"

// ArtStyle は再生成時に適用する画風のラベルです。
// 表示層からは不透明な文字列として渡されるため、未知の値も受け付けます。
type ArtStyle string

const (
	StyleAnime       ArtStyle = "anime"
	StyleWatercolor  ArtStyle = "watercolor"
	StyleOilPainting ArtStyle = "oil painting"
	StylePixelArt    ArtStyle = "pixel art"
	StylePopArt      ArtStyle = "pop art"
	StyleCyberpunk   ArtStyle = "cyberpunk"
	StyleSketch      ArtStyle = "pencil sketch"
	StyleClaymation  ArtStyle = "claymation"
)

// stylePair は1つの画風に対する2種類のプロンプト文字列を保持します。
// Instruction は image-to-image 用の命令文、Suffix は text-to-image 用の
// 末尾修飾句で、バックエンドごとに求められる言い回しが異なるため共有しません。
type stylePair struct {
	instruction string
	suffix      string
}

var stylePrompts = map[ArtStyle]stylePair{
	StyleAnime: {
		instruction: "Transform this image into a vibrant Japanese anime style with clean line art, cel shading, and expressive eyes.",
		suffix:      ", in the style of a vibrant Japanese anime with clean line art and cel shading",
	},
	StyleWatercolor: {
		instruction: "Repaint this image as a delicate watercolor painting with soft washes, bleeding edges, and visible paper texture.",
		suffix:      ", painted as a delicate watercolor with soft washes and visible paper texture",
	},
	StyleOilPainting: {
		instruction: "Reinterpret this image as a classical oil painting with rich impasto brushstrokes and dramatic lighting.",
		suffix:      ", rendered as a classical oil painting with rich brushstrokes and dramatic lighting",
	},
	StylePixelArt: {
		instruction: "Convert this image into retro 16-bit pixel art with a limited color palette and crisp dithering.",
		suffix:      ", as retro 16-bit pixel art with a limited color palette",
	},
	StylePopArt: {
		instruction: "Rework this image as bold pop art with halftone dots, thick outlines, and saturated primary colors.",
		suffix:      ", as bold pop art with halftone dots and saturated primary colors",
	},
	StyleCyberpunk: {
		instruction: "Transform this image into a neon-drenched cyberpunk scene with holographic signage and rain-slick reflections.",
		suffix:      ", set in a neon-drenched cyberpunk scene full of holographic light",
	},
	StyleSketch: {
		instruction: "Redraw this image as a hand-drawn pencil sketch with loose crosshatching and rough graphite shading.",
		suffix:      ", drawn as a hand-made pencil sketch with loose crosshatching",
	},
	StyleClaymation: {
		instruction: "Remodel this image as a claymation scene with hand-sculpted plasticine figures and stop-motion texture.",
		suffix:      ", sculpted as a claymation scene with visible plasticine texture",
	},
}

// styleOrder は UI 等に提示する画風の固定順序です。
var styleOrder = []ArtStyle{
	StyleAnime,
	StyleWatercolor,
	StyleOilPainting,
	StylePixelArt,
	StylePopArt,
	StyleCyberpunk,
	StyleSketch,
	StyleClaymation,
}

// Styles は定義済みの8画風を固定順序で返します。
func Styles() []ArtStyle {
	out := make([]ArtStyle, len(styleOrder))
	copy(out, styleOrder)
	return out
}

// InstructionalPrompt は image-to-image バックエンドへ送る命令文を返します。
// 未定義の画風でもラベルを埋め込んだ汎用文を生成するため、空文字は返しません。
func (s ArtStyle) InstructionalPrompt() string {
	if p, ok := stylePrompts[s]; ok {
		return p.instruction
	}
	return fmt.Sprintf("Transform this image into the style of %s, keeping the original composition recognizable.", string(s))
}

// StyleSuffix は text-to-image 用にベース説明文へ連結する修飾句を返します。
// こちらも未定義の画風に対してラベルを埋め込んだ汎用句へフォールバックします。
func (s ArtStyle) StyleSuffix() string {
	if p, ok := stylePrompts[s]; ok {
		return p.suffix
	}
	return fmt.Sprintf(", in the style of %s", string(s))
}
