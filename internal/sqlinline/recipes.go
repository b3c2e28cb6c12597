package sqlinline

const QSelectRecipes = `--sql ced9af1e-502f-49a6-84e6-ed21e2a70fe6
select recipe_id, title, cook_time, cuisines, tags, ingredients, calories::float8, protein::float8,
       carbohydrates::float8, fat::float8, fiber::float8, popularity_score, created_at
from recipes
order by recipe_id;
`

const QSelectRecipeByID = `--sql c5d3c037-5b41-454a-89d1-7184174336e7
select recipe_id, title, cook_time, cuisines, tags, ingredients, calories::float8, protein::float8,
       carbohydrates::float8, fat::float8, fiber::float8, popularity_score, created_at
from recipes
where recipe_id = $1::bigint;
`

const QSelectPopularRecipes = `--sql 10729120-87a7-4bbb-97e5-ba942bea32cf
select recipe_id, title, cook_time, cuisines, tags, ingredients, calories::float8, protein::float8,
       carbohydrates::float8, fat::float8, fiber::float8, popularity_score, created_at
from recipes
order by popularity_score desc, recipe_id
limit $1::int;
`

const QSearchRecipesByTitle = `--sql c906e190-c14d-4933-aa0e-eec679a5a3cd
select recipe_id, title, cook_time, cuisines, tags, ingredients, calories::float8, protein::float8,
       carbohydrates::float8, fat::float8, fiber::float8, popularity_score, created_at
from recipes
where title ilike '%' || $1::text || '%'
order by recipe_id;
`

const QInsertRecipe = `--sql 41618f93-e54e-4250-b101-e5f56cd08508
insert into recipes (title, cook_time, cuisines, tags, ingredients, calories, protein, carbohydrates, fat, fiber, popularity_score, created_at)
values ($1::text, $2::int, $3::text[], $4::text[], coalesce($5::jsonb, '[]'::jsonb), $6::numeric, $7::numeric, $8::numeric, $9::numeric, $10::numeric, $11::int, now())
returning recipe_id, created_at;
`
