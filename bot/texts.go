package bot

// User-facing texts. Wording is part of the support flow contract
// with the operations team, change it together with them.

const greetingText = "Здравствуйте, Вы написали в чат-бот поддержку «Akku-Batt». В чем Вам нужно помочь?"

const mainMenuText = "Вы в главном меню чат поддержки «Akku-Batt», выберите в чем Вам нужно помочь?"

const chooseTopicText = "Выберите, что вас интересует:"

const unknownInputText = "Извините, я Вас не понял. Пожалуйста, выберите одну из предложенных кнопок."

const callSupportText = "Если Вы не нашли нужный вам пункт, позвоните по номеру: +7(926)013-43-85"

const registrationTutorialText = "Для использования самоката установите приложение «Akku-Batt» на свой смартфон.\n\n" +
	"1) Установите приложение:\n" +
	"   - Отсканируйте QR-код на самокате 📱\n" +
	"   - Или загрузите из магазинов:\n" +
	"     • App Store\n" +
	"     • RuStore\n" +
	"     • APK-файл с сайта akku-batt.ru\n\n" +
	"2) Запустите приложение и:\n" +
	"   - Ознакомьтесь с:\n" +
	"     • Правилами оферты 📄\n" +
	"     • Политикой конфиденциальности\n" +
	"   - Подтвердите, что вам 18+\n\n" +
	"3) Зарегистрируйтесь:\n" +
	"   - Введите свои данные ✏️\n\n" +
	"4) Привяжите банковскую карту:\n" +
	"   - Для оплаты поездок 💳"

const rentTutorialText = "Для аренды самоката и безопасного завершения поездки:\n\n" +
	"1) Начало аренды:\n" +
	"   - Найдите самокат на карте или перед собой 🗺️\n" +
	"   - Введите номер самоката или отсканируйте QR-код в приложении\n\n" +
	"2) Подтверждение аренды:\n" +
	"   - Выберите подходящий тариф\n" +
	"   - Нажмите \"Начать аренду\"\n" +
	"   - Дождитесь активации (экран самоката загорится) 🔄\n\n" +
	"3) Проверка самоката:\n" +
	"   - Обязательно осмотрите на повреждения 👀\n" +
	"   - Проверьте работу тормозов\n\n" +
	"4) Завершение аренды:\n" +
	"   - Оставьте на отмеченной парковке 🅿\n" +
	"   - Самостоятельно завершите через приложение иначе списание средств продолжится\n\n" +
	"Приятной поездки! 🛴💨"

const howToRideTutorialText = "Инструкция по использованию самоката:\n\n" +
	"1) Начало движения:\n" +
	"   - Снимите самокат с подножки плавным движением вперед\n" +
	"   - Встаньте одной ногой на деку\n" +
	"   - Толкнитесь другой ногой\n" +
	"   - Плавно нажмите ручку газа под большим пальцем правой руки 👆\n\n" +
	"2) Смена скоростных режимов:\n" +
	"   - Дважды нажмите кнопку на самокате 🔄\n" +
	"   - Выберите режим:\n" +
	"     • Эко 🌱\n" +
	"     • Драйв 🚀\n" +
	"     • Спорт ⚡\n\n" +
	"3) Управление фонарём:\n" +
	"   - Нажмите один раз кнопку на самокате 💡\n\n" +
	"⚠ Не забывайте:\n" +
	"   - Включать фары в тёмное время суток 🌙\n" +
	"   - Соблюдать правила безопасности\n\n" +
	"Желаем вам приятной поездки! 😊"

const whereMoneyText = "Когда вы берете самокат в аренду, с вашей карты блокируются 300 рублей в качестве залога для оплаты поездки. 💰\n\n" +
	"Как происходит списание:\n" +
	"1. По окончании поездки с карты списывается стоимость аренды, а заблокированный залог мгновенно возвращается. 🔄\n" +
	"2. Если на карте недостаточно средств для оплаты, списание происходит из заблокированной суммы.\n\n" +
	"Важно знать:\n" +
	"— Обработка транзакции банком может занять до двух суток. ⏳\n" +
	"— После обработки вместо 300 рублей вы увидите реальную стоимость поездки, а баланс карты будет пополнен.\n\n" +
	"Рекомендация:\n" +
	"Для быстрого расчёта с банком убедитесь, что на карте есть дополнительные средства помимо блокируемого залога. 💳"

const howStopRentText = "Для завершения аренды обязательно выполните следующие действия:\n\n" +
	"1. Оставьте самокат на одной из разрешенных парковок, отмеченных в приложении синим цветом. 🅿️\n" +
	"2. Нажмите кнопку \"Завершить\" в приложении.\n" +
	"3. Подтвердите завершение аренды, нажав появившуюся кнопку подтверждения.\n" +
	"4. Дождитесь сообщения о успешном завершении аренды. ✅\n\n" +
	"Важно знать:\n" +
	"— Если не завершить аренду, списание средств будет продолжаться. ⚠️\n" +
	"— Аренду можно завершить ТОЛЬКО на выделенных парковках.\n\n" +
	"Рекомендация:\n" +
	"Всегда проверяйте уведомление в приложении о завершении аренды, чтобы избежать лишних списаний. 📱"

const finishRentManualText = "Если кнопка \"Завершить\" не отображается на главном экране:\n\n" +
	"1. Нажмите на иконку самоката 🛴 (третья сверху справа в приложении, с красной пометкой)\n" +
	"2. Выберите самокат, аренду которого хотите завершить\n" +
	"3. Появится кнопка \"Завершить\" - нажмите ее\n\n" +
	"Важно:\n" +
	"— После нажатия не забудьте подтвердить завершение аренды\n\n"

const scooterStoppedText = "Правила использования самоката в зонах катания:\n\n" +
	"— Разрешенная зона отмечена в приложении зеленым цветом ✅\n" +
	"— Запрещенная зона выделена красным цветом ⛔\n\n" +
	"Что важно знать:\n" +
	"1. При выезде за разрешенную зону или въезде в запрещенную самокат автоматически блокируется\n" +
	"2. Для разблокировки вернитесь в зеленую зону или покиньте красную\n" +
	"3. Если разблокировка не произошла автоматически:\n" +
	"   • Нажмите кнопку \"Управление\" в приложении\n" +
	"   • Или используйте иконку самоката 🛴 (третья сверху справа с красной отметкой)\n" +
	"   • Выберите нужный самокат и разблокируйте его\n\n" +
	"Рекомендация:\n" +
	"Следите за границами зон на карте приложения, чтобы избежать блокировки"

const whereICanRideText = "Кататься можно только в разрешенных зонах:\n\n" +
	"1) Разрешенные зоны:\n" +
	"   - Обозначены зеленым цветом на карте 🗺️\n" +
	"   - Кататься можно только в этих зонах\n\n" +
	"2) При выезде за границы:\n" +
	"   - Самокат автоматически блокируется\n" +
	"   - Для разблокировки вернитесь в зеленую зону\n\n"

const returnDidNotArriveText = "Если возврат средств не пришёл, значит, " +
	"на вашей карте было недостаточно средств для выбранного тарифа 💳\n\n" +
	"В таком случае средства были взяты из залога."

const scooterControlsText = "Управление элементами самоката:\n\n" +
	"1) Фара самоката:\n" +
	"   - Управляется кнопкой на рулевой панели\n" +
	"   - Одинарное нажатие - вкл/выкл 💡\n" +
	"   - Рекомендуется всегда держать фару включенной\n\n" +
	"2) Режимы движения:\n" +
	"   - Доступны 3 варианта:\n" +
	"     • Эко (экономичный) 🌱\n" +
	"     • Драйв (стандартный) 🚀\n" +
	"     • Спорт (максимальная скорость) ⚡\n" +
	"   - Переключение двойным нажатием кнопки\n" +
	"   - Выбирайте наиболее комфортный режим\n\n" +
	"Для вашей безопасности используйте фару в любое время суток."

// Intake prompts.
const (
	intakeIntroText = "Для оформления заявки на возврат средств потребуется предоставить дополнительные данные. \n\n" +
		"Пожалуйста, прикрепите одну фотографию вашего самоката."

	askPhotoAgainText = "Пожалуйста, прикрепите одну фотографию вашего самоката."

	singlePhotoOnlyText = "Пришлите только одно фото самоката."

	photoOnlyText = "Для создания заявки принимается только фото.\n" +
		"Пришлите пожалуйста фото самоката."

	photoFailedText = "Произошла ошибка при обработке фото."

	askRentalTimeText = "Укажите пожалуйста время начала аренды (ДД.ММ ЧЧ:ММ)"

	badRentalTimeFormatText = "Некорректный формат времени. Пожалуйста, введите время в формате: ДД.ММ ЧЧ:ММ"

	staleRentalTimeText = "Дата вашей аренды должна быть не раньше текущего времени и не позднее чем через 30 дней.\n" +
		"Пожалуйста, введите время в формате: ДД.ММ ЧЧ:ММ"

	askScooterNumberText = "Укажите, пожалуйста, номер Вашего самоката"

	scooterNumberNotDigitsText = "Введите числовой номер самоката, длиной в 4 цифры. Пожалуйста, укажите номер снова."

	scooterNumberBadLengthText = "Номер самоката должен содержать ровно 4 цифры. Пожалуйста, укажите номер снова."

	askPhoneNumberText = "Укажите пожалуйста Ваш номер телефона"

	badPhoneNumberText = "Некорректный номер телефона. " +
		"Пожалуйста, введите номер в формате: +7XXX..., 7XXX... или 8XXX..."

	phoneFormatFailedText = "Ошибка форматирования номера. " +
		"Пожалуйста, введите номер в формате: +7XXX..., 7XXX... или 8XXX..."

	askCardSuffixText = "Укажите пожалуйста последние 4 цифры Вашей карты, которая " +
		"привязана к профилю Akku-Batt."

	cardSuffixNotDigitsText = "Введите числовой номер карты, последние 4 цифры. Пожалуйста, укажите номер снова."

	cardSuffixBadLengthText = "Номер карты должен содержать ровно 4 цифры. Пожалуйста, укажите номер снова."

	askDescriptionText = "Опишите пожалуйста Вашу проблему"

	reportAcceptedText = "Спасибо за Ваше обращение, мы приняли его в обработку.\n\n" +
		"Рассмотрение заявки пройдет в течении трёх рабочих дней. " +
		"Для уточнения информации, с вами могут связаться наши сотрудники.\n\n" +
		"Вы можете оставить самокат и поискать новый поблизости."

	reportFailedText = "Не удалось отправить заявку, заполните снова"
)

// Staff disposition prompts.
const (
	askRefundAmountText = "Укажите сумму возврата:"

	badRefundAmountText = "Пожалуйста, укажите корректную сумму возврата (например: 100 или 50.50):"

	askCommentText = "Добавьте комментарий (если нет, то напишите \"-\"):"

	askRejectReasonText = "Укажите причину отклонения заявки ответом на это сообщение:"

	staleSessionText = "❌ Сессия устарела. Начните заново."

	alreadyDecidedText = "По этой заявке решение уже принято."

	processErrorText = "Произошла ошибка при обработке. Попробуйте еще раз."

	callbackErrorText = "Произошла ошибка"
)
