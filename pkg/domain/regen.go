package domain

// RegenerationModel は再生成に使うバックエンドの選択値です。
type RegenerationModel string

const (
	// ModelGemini は元画像を条件とする編集系バックエンドです。
	ModelGemini RegenerationModel = "gemini"
	// ModelImagen はテキストのみを条件とする生成系バックエンドです。
	ModelImagen RegenerationModel = "imagen"
)

// RegenerationRequest は1フレーム分の再生成要求です。
// 呼び出しごとに構築して使い捨てる一時オブジェクトで、永続化しません。
// Model に応じて ImageData / TextPrompt のどちらか一方が必須になります。
type RegenerationRequest struct {
	Model       RegenerationModel
	Style       ArtStyle
	AspectRatio float64 // 幅/高さ。text-to-image 時のみ参照される
	ImageData   string  // 標準 base64 エンコード済みの元画像 (image-conditioned)
	TextPrompt  string  // ベースとなる説明文 (text-conditioned)
	SourceURL   string  // 任意。ImageData の代わりに取得元を指定する
	Seed        *int64  // nil でランダム、値指定で固定
}

// RegenerationResult は生成された画像と送信したプロンプトの組です。
// 所有権は呼び出し側にあり、コアは結果への参照を保持しません。
type RegenerationResult struct {
	Image    string // 標準 base64 エンコード済みの生成画像
	MimeType string
	Prompt   string // 実際に送信したプロンプト全文（表示・監査用）
	UsedSeed int64  // 戻り値は情報欠落を防ぐため int64
}

// DataURL は生成画像を表示用の data URL として返します。
func (r *RegenerationResult) DataURL() string {
	return "data:" + r.MimeType + ";base64," + r.Image
}
