package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, MenuTitleKey, "Escolha um padrão")
	message.SetString(lang, MenuOptionKey, "\tDigite %d para %s")
	message.SetString(lang, MenuQuitKey, "\tDigite 0 para sair")
	message.SetString(lang, InvalidChoiceKey, "%q não é uma opção, digite um número de 0 a %d")
	message.SetString(lang, StatusKey, "%s | geração %d de %d | %d vivas")
	message.SetString(lang, RunInterruptedKey, "Execução de %s interrompida após %d gerações")
	message.SetString(lang, RunSummaryKey, "%s: %d gerações, %d nascimentos, %d mortes, população máxima %d")
	message.SetString(lang, PatternPulsarKey, "Pulsar")
	message.SetString(lang, PatternGlidersKey, "Planadores")
	message.SetString(lang, PatternGunKey, "Canhão de Gosper")
	message.SetString(lang, PatternQueenBeeKey, "Lançadeira da Abelha-Rainha")
}
