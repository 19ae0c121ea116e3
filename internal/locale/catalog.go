package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog keys are the English strings; English lookups fall back to the key.
var japanese = map[string]string{
	"Banker": "バンカー",
	"Player": "プレイヤー",
	"Tie":    "タイ",

	"Banker only":                 "バンカーのみ",
	"Player only":                 "プレイヤーのみ",
	"Follow the last winner":      "前回勝った方に賭ける",
	"Alternate player and banker": "プレイヤー⇔バンカー交互",
	"PP→BB (two each)":            "PP→BB（2回ずつ交互）",

	"Round":          "回数",
	"Target":         "賭け先",
	"Bet":            "賭け金",
	"Result":         "結果",
	"Balance before": "所持金(前)",
	"Balance after":  "所持金(後)",
	"Profit/loss":    "損益",
	"Action":         "アクション",

	"Tie (push)":                       "タイ (返金)",
	"Win +%d":                          "勝ち +%d円",
	"Loss -%d (next %d)":               "負け -%d円 (次回%d円)",
	"Loss -%d (reset after %d losses)": "負け -%d円 (%d連敗リセット)",

	"High card":       "ハイカード",
	"One pair":        "ワンペア",
	"Flush":           "フラッシュ",
	"Straight":        "ストレート",
	"Three of a kind": "スリーカード",
	"Straight flush":  "ストレートフラッシュ",

	"Set an ante and deal":                     "アンティを設定してディールしてください",
	"Play or fold":                             "プレイまたはフォールドを選択してください",
	"Start the next hand":                      "次のゲームを開始してください",
	"Not enough chips":                         "所持金が足りません",
	"Folded. Lost %d.":                         "フォールドしました。%d円を失いました。",
	"Dealer does not qualify. Ante pays (+%d)": "ディーラー不成立。アンティ配当を獲得!(+%d円)",
	"Win! %s vs %s (+%d)":                      "勝利! %s vs %s (+%d円)",
	"Win! %s vs %s (+%d, bonus included)":      "勝利! %s vs %s (+%d円 ボーナス含む)",
	"Push. Bets returned (%s)":                 "引き分け。ベット返却 %s",
	"Lost... %s vs %s (-%d)":                   "敗北... %s vs %s (-%d円)",
}

func init() {
	for key, msg := range japanese {
		if err := message.SetString(language.Japanese, key, msg); err != nil {
			panic(err)
		}
	}
}
