package i18n

// russianMessages contains all Russian translations
var russianMessages = map[string]string{
	// Errors
	"error.title":              "Ошибка",
	"error.generic":            "Что-то пошло не так при выполнении команды. Попробуйте ещё раз.",
	"error.unknown_command":    "Эта команда не распознана.",
	"error.rate_limited":       "Слишком много запросов. Подождите немного.",
	"error.no_active_session":  "Бот не подключён к голосовому каналу.",
	"error.actor_not_in_voice": "Для этого нужно находиться в голосовом канале.",
	"error.queue_full":         "Очередь заполнена (не больше %d треков).",
	"error.track_not_found":    "По вашему запросу ничего не найдено.",
	"error.track_too_long":     "Нельзя включать треки длиннее %s.",
	"error.invalid_volume":     "Громкость должна быть целым числом от 0 до 200.",
	"error.queue_empty":        "Очередь пуста.",
	"error.no_previous_track":  "Предыдущего трека нет.",
	"error.loop_active":        "Сначала отключите повтор.",
	"error.nothing_playing":    "Сейчас ничего не играет.",
	"error.already_paused":     "Воспроизведение уже на паузе.",
	"error.not_paused":         "Воспроизведение уже идёт.",

	// Confirmations
	"confirm.started":               "Сейчас играет **%s**.",
	"confirm.queued":                "**%s** добавлен в очередь на позицию %d.",
	"confirm.paused":                "Воспроизведение приостановлено.",
	"confirm.resumed":               "Воспроизведение продолжено.",
	"confirm.skipped":               "Переключено на **%s**.",
	"confirm.previous":              "Возвращаемся к **%s**.",
	"confirm.stopped":               "Воспроизведение остановлено. До встречи!",
	"confirm.loop_on":               "Текущий трек будет повторяться.",
	"confirm.loop_off":              "Повтор отключён.",
	"confirm.volume":                "Громкость установлена на %d%%.",
	"confirm.replay":                "**%s** играет с начала.",
	"confirm.notifications_public":  "Уведомления плеера теперь видны всем.",
	"confirm.notifications_private": "Уведомления плеера теперь видит только тот, кто нажал кнопку.",
	"confirm.notifications_silent":  "Уведомления плеера отключены.",

	// Player
	"player.title":               "Сейчас играет",
	"player.field_artist":        "Исполнитель",
	"player.field_duration":      "Длительность",
	"player.field_requester":     "Заказал",
	"player.field_volume":        "Громкость",
	"player.field_queue":         "В очереди",
	"player.footer_loop":         "Повтор включён",
	"player.live":                "ЭФИР",
	"player.waiting_title":       "Очередь пуста",
	"player.waiting":             "Жду новые треки. Если ничего не добавят, выйду через %d секунд.",
	"player.destroyed_title":     "Плеер закрыт",
	"player.destroyed":           "Долго ничего не добавляли, поэтому я вышел из голосового канала.",
	"player.channel_empty_title": "Канал опустел",
	"player.channel_empty":       "Все вышли из голосового канала, поэтому я отключился.",
	"player.ended":               "Воспроизведение завершено",

	// Queue
	"queue.title":  "Очередь",
	"queue.entry":  "%d. %s `%s`",
	"queue.footer": "Треков в очереди: %d",

	// Modals
	"modal.song_title":         "Добавить трек в очередь",
	"modal.song_label":         "Трек",
	"modal.song_placeholder":   "Название или ссылка",
	"modal.volume_title":       "Изменить громкость плеера",
	"modal.volume_label":       "Громкость",
	"modal.volume_placeholder": "Целое число от 0 до 200",

	// Info
	"info.ping": "Понг! Текущая задержка: `%dms`",

	// Command metadata
	"command.music":                     "музыка",
	"command.music.description":         "Команды музыкального плеера",
	"command.play":                      "играть",
	"command.play.description":          "Включить трек или добавить его в очередь",
	"command.play.song":                 "трек",
	"command.play.song.description":     "Название или ссылка",
	"command.pause":                     "пауза",
	"command.pause.description":         "Поставить воспроизведение на паузу",
	"command.resume":                    "продолжить",
	"command.resume.description":        "Продолжить воспроизведение",
	"command.skip":                      "пропустить",
	"command.skip.description":          "Перейти к следующему треку",
	"command.stop":                      "стоп",
	"command.stop.description":          "Остановить воспроизведение и выйти из канала",
	"command.previous":                  "назад",
	"command.previous.description":      "Вернуться к предыдущему треку",
	"command.loop":                      "повтор",
	"command.loop.description":          "Включить или выключить повтор текущего трека",
	"command.queue":                     "очередь",
	"command.queue.description":         "Показать очередь",
	"command.volume":                    "громкость",
	"command.volume.description":        "Изменить громкость плеера",
	"command.volume.volume":             "громкость",
	"command.volume.volume.description": "Целое число от 0 до 200",
	"command.replay":                    "заново",
	"command.replay.description":        "Включить текущий трек с начала",
	"command.ping":                      "пинг",
	"command.ping.description":          "Показать задержку бота",
}
