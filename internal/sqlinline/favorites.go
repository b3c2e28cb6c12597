package sqlinline

const QSelectFavoriteRecipes = `--sql 5fabccdb-dda2-45e0-a0b1-bc30f1048b51
select r.recipe_id, r.title, r.cook_time, r.cuisines, r.tags, r.ingredients, r.calories::float8, r.protein::float8,
       r.carbohydrates::float8, r.fat::float8, r.fiber::float8, r.popularity_score, r.created_at
from favorite_recipes f
join recipes r on r.recipe_id = f.recipe_id
where f.user_id = $1::bigint
order by f.created_at desc, f.favorite_id desc;
`

const QInsertFavorite = `--sql 165fcd36-97e0-459f-8560-3a95e08c6adf
insert into favorite_recipes (user_id, recipe_id, times_used, created_at)
values ($1::bigint, $2::bigint, 0, now())
returning favorite_id, times_used, created_at;
`

const QDeleteFavorite = `--sql 29b90a2b-f71a-4a93-8ffa-bad592877453
delete from favorite_recipes where user_id = $1::bigint and recipe_id = $2::bigint;
`
