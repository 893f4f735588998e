package generator

// 既定のモデルID。Options で上書きしない限りこの値が使われます。
const (
	// DefaultGeminiImageModel は image-conditioned（元画像の編集・変換）用モデルです。
	DefaultGeminiImageModel = "gemini-2.5-flash-image"
	// DefaultImagenModel は text-conditioned（テキストからの新規生成）用モデルです。
	DefaultImagenModel = "imagen-4.0-generate-001"
)

// EnvAPIKey はクライアント構築時に参照する資格情報の環境変数名です。
const EnvAPIKey = "GEMINI_API_KEY"

// GenerateOptions は image-conditioned 呼び出しの生成パラメータです。
type GenerateOptions struct {
	AspectRatio string // 空なら出力比率はモデル任せ
	Seed        *int32 // nil でランダム、値指定で固定
}

// ImagenOptions は text-conditioned 呼び出しの生成パラメータです。
type ImagenOptions struct {
	NumberOfImages int32  // 0 以下は 1 として扱う
	AspectRatio    string // サポートするトークンのいずれか
	OutputMIMEType string // 生成画像の出力エンコーディング
	Seed           *int32
}
