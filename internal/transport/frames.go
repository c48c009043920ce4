package transport

import "github.com/remram44/japong/configs"

// IdentifyFrame é a primeira linha enviada depois de conectar.
func IdentifyFrame(p configs.Protocol, key string) string {
	if p == configs.ProtocolRaw {
		return key
	}
	return "Key: " + key
}

// ChatFrame embrulha uma mensagem de chat.
func ChatFrame(p configs.Protocol, text string) string {
	if p == configs.ProtocolRaw {
		return text
	}
	return "Msg: " + text
}
